// Package images - Image transport codec and bounding box geometry.
package images

import (
	"encoding/base64"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// ErrDecode marks inputs that could not be turned into an image: malformed
// base64 text, or decoded bytes that OpenCV does not recognize as an encoded
// image.
var ErrDecode = errors.New("image decode failed")

// DataURIPrefix is prepended to every encoded annotated image so browsers can
// render the response directly.
const DataURIPrefix = "data:image/jpeg;base64,"

// Decode converts standard base64 text into a 3-channel BGR gocv.Mat.
//
// The caller owns the returned Mat and must Close it.
func Decode(b64 string) (gocv.Mat, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return gocv.Mat{}, errors.Wrap(ErrDecode, err.Error())
	}

	mat, err := gocv.IMDecode(raw, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, errors.Wrap(ErrDecode, err.Error())
	}
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, errors.Wrap(ErrDecode, "unrecognized image format")
	}

	return mat, nil
}

// EncodeDataURI compresses the Mat as JPEG and base64-encodes it behind a
// data-URI marker.
func EncodeDataURI(mat gocv.Mat) (string, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, mat)
	if err != nil {
		return "", errors.Wrap(err, "jpeg encode")
	}
	defer buf.Close()

	return DataURIPrefix + base64.StdEncoding.EncodeToString(buf.GetBytes()), nil
}
