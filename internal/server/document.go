package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	documentdomain "github.com/smallbiznis/folio/internal/document/domain"
	"github.com/smallbiznis/folio/internal/providers/pdf"
)

func documentMode(c *gin.Context) documentdomain.Mode {
	mode := documentdomain.Mode(c.DefaultQuery("mode", string(documentdomain.ModeLegal)))
	return mode
}

func (s *Server) assembleForRequest(c *gin.Context) (documentdomain.Document, string, bool) {
	record, err := s.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return documentdomain.Document{}, "", false
	}

	doc, err := s.assembler.Assemble(c.Request.Context(), record, documentMode(c))
	if err != nil {
		AbortWithError(c, err)
		return documentdomain.Document{}, "", false
	}
	return doc, record.OrderNumber(), true
}

func (s *Server) GetOrderDocument(c *gin.Context) {
	doc, _, ok := s.assembleForRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) GetOrderDocumentHTML(c *gin.Context) {
	doc, _, ok := s.assembleForRequest(c)
	if !ok {
		return
	}

	html, err := s.renderer.RenderHTML(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) GetOrderDocumentPDF(c *gin.Context) {
	doc, orderNumber, ok := s.assembleForRequest(c)
	if !ok {
		return
	}

	reader, err := s.pdfGen.Generate(c.Request.Context(), doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.Filename(doc, orderNumber)+`"`)
	c.Data(http.StatusOK, "application/pdf", body)
}
