package resume

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNoPage is returned for a page number outside the document.
var ErrNoPage = errors.New("page out of range")

var disableConfigDir sync.Once

// PDF counts and extracts pages with pdfcpu.
type PDF struct{}

func (PDF) config() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount returns the number of pages in data.
func (p PDF) PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), p.config())
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return n, nil
}

// Page returns page n (1-based) of data as a standalone PDF.
func (p PDF) Page(data []byte, n, total int) ([]byte, error) {
	if n < 1 || n > total {
		return nil, ErrNoPage
	}
	var out bytes.Buffer
	if err := api.Trim(bytes.NewReader(data), &out, []string{strconv.Itoa(n)}, p.config()); err != nil {
		return nil, fmt.Errorf("extract page %d: %w", n, err)
	}
	return out.Bytes(), nil
}
