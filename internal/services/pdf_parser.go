package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"

	"gapscan/resume-gap-analyzer/internal/models"
)

type PDFParserService interface {
	ExtractText(r io.Reader) (string, error)
	ExtractTextWithMetaData(r io.Reader) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	// TextPages counts pages that contributed text.
	TextPages int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

func (p *pdfParserService) ExtractText(r io.Reader) (string, error) {
	content, err := p.ExtractTextWithMetaData(r)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(r io.Reader) (content *PDFContent, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		pdfExtractionsTotal.WithLabelValues("read_error").Inc()
		return nil, fmt.Errorf("%w: failed to read upload: %v", models.ErrExtractionFailure, err)
	}

	if mime := mimetype.Detect(data); !mime.Is("application/pdf") {
		pdfExtractionsTotal.WithLabelValues("not_pdf").Inc()
		return nil, fmt.Errorf("%w: content is %s, not a PDF", models.ErrExtractionFailure, mime.String())
	}

	// The pdf package panics on some malformed object graphs.
	defer func() {
		if rec := recover(); rec != nil {
			pdfExtractionsTotal.WithLabelValues("parse_error").Inc()
			content = nil
			err = fmt.Errorf("%w: %v", models.ErrExtractionFailure, rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		pdfExtractionsTotal.WithLabelValues("parse_error").Inc()
		return nil, fmt.Errorf("%w: %v", models.ErrExtractionFailure, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()
	textPages := 0

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
		textPages++
	}

	pdfExtractionsTotal.WithLabelValues("ok").Inc()

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
		TextPages: textPages,
	}, nil
}
