package pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/edumate-ai/edumate/internal/student"
)

// RenderNote writes a saved note as a PDF file under outputDirectory.
// It returns the absolute path of the created file.
func RenderNote(note student.Note, board student.Board, outputDirectory string) (string, error) {
	markdown := fmt.Sprintf("# %s: %s\n\n_%s board study notes_\n\n%s\n",
		note.Subject, note.Chapter, board, note.Content)

	pdfPath := filepath.Join(outputDirectory, noteFileName(note))
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(markdown)); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}

func noteFileName(note student.Note) string {
	sanitize := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.ReplaceAll(s, string(filepath.Separator), "-")
		s = strings.ReplaceAll(s, " ", "_")
		return s
	}
	return fmt.Sprintf("%s_%s.pdf", sanitize(note.Subject), sanitize(note.Chapter))
}
