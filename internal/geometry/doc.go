// Package geometry holds the pure arithmetic of output sizing: fitting a
// target canvas against the source without upscaling, parsing aspect-ratio
// strings, and the even-width rule codecs need for chroma subsampling.
package geometry
