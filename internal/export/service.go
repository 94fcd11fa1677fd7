package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bestofgoa/bok/constants"
	"github.com/bestofgoa/bok/internal/entity"
	"github.com/bestofgoa/bok/internal/repository"
)

// Service is a tiny façade over the listing repository that produces XLSX
// bytes for the admin export.
type Service struct {
	repo   repository.ListingRepository
	logger *slog.Logger
}

func NewService(repo repository.ListingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportListingsXLSX returns an XLSX workbook (as bytes) for one entity
// type. When active is non-nil only published or only unpublished listings
// are included.
func (s *Service) ExportListingsXLSX(ctx context.Context, et constants.EntityType, active *bool) ([]byte, error) {
	start := time.Now()

	recs, _, err := s.repo.List(ctx, &repository.ListListingsRequest{
		EntityType: et,
		Active:     active,
	})
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Listings"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Slug",
		"Area",
		"Address",
		"Phone",
		"Website",
		"Price",
		"Rating",
		"Reviews",
		"Published",
		"Verified",
		"Attributes",
		"Created",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, l := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, l.Name)
		write(2, l.Slug)
		write(3, l.Area)
		write(4, truncate(l.Address, 120))
		write(5, l.Phone)
		write(6, l.Website)
		write(7, constants.PriceSymbol(l.PriceLevel))
		if l.Rating != nil {
			write(8, *l.Rating)
		}
		write(9, l.ReviewCount)
		write(10, l.Active)
		write(11, l.Verified)
		write(12, attributeNames(l.Attributes))
		write(13, l.CreatedAt.Format("2006-01-02"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // name
	_ = f.SetColWidth(sheet, "B", "B", 28) // slug
	_ = f.SetColWidth(sheet, "C", "C", 18) // area
	_ = f.SetColWidth(sheet, "D", "D", 48) // address
	_ = f.SetColWidth(sheet, "E", "F", 24) // contact
	_ = f.SetColWidth(sheet, "L", "L", 36) // attributes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"entity_type", et,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func attributeNames(refs []entity.AttributeRef) string {
	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.Name
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
