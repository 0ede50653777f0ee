package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResumeInfo describes the downloadable resume.
type ResumeInfo struct {
	Path  string
	Size  int64
	Pages int
}

// Available reports whether a resume file was found.
func (r ResumeInfo) Available() bool {
	return r.Path != ""
}

// InspectResume opens the PDF at path and counts its pages. An empty path or
// a missing file yields the zero value without error; a file that is not a
// readable PDF is an error.
func InspectResume(path string) (info ResumeInfo, err error) {
	if strings.TrimSpace(path) == "" {
		return ResumeInfo{}, nil
	}
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ResumeInfo{}, nil
		}
		return ResumeInfo{}, fmt.Errorf("stat resume: %w", err)
	}
	if stat.IsDir() {
		return ResumeInfo{}, fmt.Errorf("resume %s is a directory", path)
	}

	// The pdf parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			info = ResumeInfo{}
			err = fmt.Errorf("read resume: %v", r)
		}
	}()

	file, reader, err := pdf.Open(path)
	if file != nil {
		defer file.Close()
	}
	if err != nil {
		return ResumeInfo{}, fmt.Errorf("open resume: %w", err)
	}

	return ResumeInfo{
		Path:  path,
		Size:  stat.Size(),
		Pages: reader.NumPage(),
	}, nil
}
