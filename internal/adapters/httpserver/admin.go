package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/dnicolas/tienda/internal/domain"
)

const catalogSheet = "Catalogo"

var exportHeader = []string{"ID", "Nombre", "Marca", "Categoria", "Precio", "PrecioOriginal", "EnOferta", "Descripcion", "DescripcionDetallada", "Imagenes"}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !s.state(r).IsAdmin() {
		writeJSON(w, 403, map[string]any{"error": domain.ErrNotAdmin.Error()})
		return false
	}
	return true
}

// handleAdminExport downloads the whole catalog as an XLSX workbook.
func (s *Server) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	f := excelize.NewFile()
	defer f.Close()
	idx, err := f.NewSheet(catalogSheet)
	if err != nil {
		http.Error(w, "xlsx", 500)
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(catalogSheet, cell, h)
	}
	for i, p := range s.catalog.Store.List() {
		orig := ""
		if p.OriginalPrice != nil {
			orig = strconv.FormatFloat(*p.OriginalPrice, 'f', 2, 64)
		}
		row := []any{
			p.ID.String(), p.Name, p.Brand, p.Category,
			p.Price, orig, p.IsOnSale,
			p.Description, p.DetailedDesc, strings.Join(p.Images, "|"),
		}
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(catalogSheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="catalogo.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("export xlsx")
	}
}

// handleAdminImport applies an XLSX upload as a series of whole-record
// edits. Rows with unknown ids are skipped; reviews are immutable and are
// carried over from the existing record.
func (s *Server) handleAdminImport(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		http.Error(w, "multipart", 400)
		return
	}
	fhs := r.MultipartForm.File["file"]
	if len(fhs) == 0 {
		http.Error(w, "file", 400)
		return
	}
	file, err := fhs[0].Open()
	if err != nil {
		http.Error(w, "file", 400)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		writeJSON(w, 400, map[string]any{"error": "xlsx inválido"})
		return
	}
	defer f.Close()

	sheet := catalogSheet
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		writeJSON(w, 400, map[string]any{"error": "xlsx inválido"})
		return
	}

	updated, skipped := 0, 0
	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			continue
		}
		id, err := uuid.Parse(strings.TrimSpace(row[0]))
		if err != nil {
			skipped++
			continue
		}
		existing, err := s.catalog.Get(id)
		if err != nil {
			skipped++
			continue
		}
		p := existing
		p.Name = strings.TrimSpace(row[1])
		p.Brand = cellAt(row, 2)
		p.Category = cellAt(row, 3)
		if price, err := strconv.ParseFloat(cellAt(row, 4), 64); err == nil {
			p.Price = price
		}
		p.OriginalPrice = nil
		if orig, err := strconv.ParseFloat(cellAt(row, 5), 64); err == nil && orig > 0 {
			p.OriginalPrice = &orig
		}
		p.IsOnSale = strings.EqualFold(cellAt(row, 6), "true")
		if d := cellAt(row, 7); d != "" {
			p.Description = d
		}
		if d := cellAt(row, 8); d != "" {
			p.DetailedDesc = d
		}
		if imgs := cellAt(row, 9); imgs != "" {
			p.Images = strings.Split(imgs, "|")
		}
		if err := s.catalog.Edit(r.Context(), p); err != nil {
			log.Warn().Err(err).Int("fila", i+1).Msg("fila de importación rechazada")
			skipped++
			continue
		}
		updated++
	}
	log.Info().Int("actualizados", updated).Int("omitidos", skipped).Msg("importación de catálogo")
	writeJSON(w, 200, map[string]any{"updated": updated, "skipped": skipped})
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
