/*
Package blockfilt filters images with a causal+anticausal recursive filter
decomposed over a regular grid of square blocks.

The image is cut into b x b blocks. Stage 1 computes, for every block
independently, the prologue and epilogue each block would hand its
neighbours if the rest of the image were zero. Stages 2-3 chain those
carries down and up every column of blocks, stages 4-5 right and left
along every row, using small dense matrices derived once from the filter
weights. Stage 6 replays the four sweeps inside each block with the
resolved carries, which makes the result identical to the sequential
filter over the whole image.

Values outside the image follow one of four extension policies: zero,
constant (edge replication), periodic, or even-periodic (reflect then
wrap). The wrap-around policies pad the grid to a whole number of periods,
so their memory use grows when the image dimensions do not divide evenly;
see paddedSpan.

To filter one image:

	out, err := blockfilt.Apply(im, recfilt.SecondOrder(2.0), 32, recfilt.Zero)

To filter many images of the same size with the same weights:

	var f blockfilt.Filter
	if err := f.Init(w, 32, recfilt.Constant, width, height); err != nil {
		...
	}
	for _, im := range ims {
		out, err := f.Apply(im)
		...
	}

The slow reference lives in package recfilt as Naive.
*/
package blockfilt
