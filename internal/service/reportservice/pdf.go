package reportservice

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/ourilentes/premios/internal/domain"
)

var pdfColumns = []string{"Data", "Vendedor", "Loja", "OS Loja", "OS Savwin", "Lente", "Tratamento", "Prêmio", "Status"}

// Relative widths per column; the name-ish columns get the extra room.
var pdfColWidths = []float64{0.09, 0.17, 0.11, 0.09, 0.09, 0.13, 0.13, 0.09, 0.10}

func renderPDF(sales []domain.Sale) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Relatório de Vendas"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range pdfColumns {
		pdf.CellFormat(contentW*pdfColWidths[i], 6, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, sale := range sales {
		data := "-"
		if !sale.Data.IsZero() {
			data = sale.Data.Format("02/01/2006")
		}
		premio := "-"
		if sale.Premio.Valid {
			premio = "R$ " + sale.Premio.Decimal.StringFixed(2)
		}
		row := []string{
			data, sale.VendedorNome, sale.Loja, sale.OSLoja, sale.OSSavwin,
			sale.Lente, sale.Tratamento, premio, sale.Status,
		}
		for i, cell := range row {
			pdf.CellFormat(contentW*pdfColWidths[i], 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
