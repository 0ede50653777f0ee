package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF builds an uncompressed PDF with the given number of blank pages.
func minimalPDF(pages int) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
	}
	kids := new(bytes.Buffer)
	for i := 0; i < pages; i++ {
		fmt.Fprintf(kids, "%d 0 R ", i+3)
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), pages))
	for i := 0; i < pages; i++ {
		objects = append(objects, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestInspectResumeCountsPages(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.pdf")
	data := minimalPDF(2)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	info, err := InspectResume(path)
	require.NoError(t, err)
	assert.True(t, info.Available())
	assert.Equal(t, 2, info.Pages)
	assert.Equal(t, int64(len(data)), info.Size)
}

func TestInspectResumeMissingFile(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.pdf")} {
		info, err := InspectResume(path)
		require.NoError(t, err)
		assert.False(t, info.Available())
	}
}

func TestInspectResumeRejectsNonPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o600))

	info, err := InspectResume(path)
	assert.Error(t, err)
	assert.False(t, info.Available())
}
