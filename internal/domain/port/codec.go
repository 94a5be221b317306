package port

import "context"

// ImageCodec moves images between the input and output trees.
type ImageCodec interface {
	// Copy decodes srcPath, applies the output color conversion and
	// encodes the result to dstPath.
	Copy(ctx context.Context, srcPath string, dstPath string) error
}
