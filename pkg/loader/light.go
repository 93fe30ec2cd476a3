package loader

import (
	"io"

	"github.com/pkg/errors"

	"github.com/dpeeke/lambda-spectral/pkg/light"
	"github.com/dpeeke/lambda-spectral/pkg/spectral"
)

func readLight(r io.Reader, subtype light.Subtype, distributions []spectral.Distribution) (light.Light, error) {
	switch subtype {
	case light.SubtypeOmni:
		idx, err := readUint32(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading omni light emittance index")
		}
		if int(idx) >= len(distributions) {
			return nil, errors.Errorf("omni light emittance index %d out of range (have %d distributions)", idx, len(distributions))
		}
		return light.NewOmni(distributions[idx]), nil
	default:
		return nil, errors.Errorf("unknown light subtype %d", subtype)
	}
}
