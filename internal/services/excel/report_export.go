package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/secureaware/phishsim-backend/internal/models"
)

// UserStatisticsProvider supplies the rows exported into the workbook
type UserStatisticsProvider interface {
	UserStatistics() ([]models.UserStat, error)
}

// Service handles Excel export of awareness statistics
type Service struct {
	stats      UserStatisticsProvider
	exportsDir string
}

// NewExcelService creates a new Excel service instance
func NewExcelService(stats UserStatisticsProvider, exportsDir string) *Service {
	// Create exports directory if it doesn't exist
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		os.MkdirAll(exportsDir, 0755)
	}

	return &Service{
		stats:      stats,
		exportsDir: exportsDir,
	}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Success  bool
	Message  string
	Filename string
	FilePath string
}

// ExportUserStatistics writes the per-user statistics to an .xlsx workbook
// and returns the generated filename.
func (s *Service) ExportUserStatistics() (*ExportResult, error) {
	stats, err := s.stats.UserStatistics()
	if err != nil {
		return nil, fmt.Errorf("failed to get user statistics: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("user_statistics_%d.xlsx", timestamp)
	filePath := filepath.Join(s.exportsDir, filename)

	f := excelize.NewFile()

	sheetName := "User Statistics"
	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	highRiskStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFC7CE"}, // Light red
			Pattern: 1,
		},
	})

	mediumRiskStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFEB9C"}, // Light yellow
			Pattern: 1,
		},
	})

	columns := []string{
		"user_id", "name", "email", "department", "clicks", "credentials", "risk",
	}

	// Write headers
	for i, col := range columns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", columnToLetter(len(columns))+"1", headerStyle)
	}

	// Set column widths
	for i, col := range columns {
		colLetter := columnToLetter(i + 1)
		width := 15.0

		switch col {
		case "user_id":
			width = 38.0
		case "name", "department":
			width = 25.0
		case "email":
			width = 30.0
		}

		f.SetColWidth(sheetName, colLetter, colLetter, width)
	}

	if len(stats) > 0 {
		for j, stat := range stats {
			rowNum := j + 2 // Start from row 2 (after headers)

			f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), stat.UserID)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), stat.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), stat.Email)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), stat.Department)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), stat.Clicks)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), stat.Credentials)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), stat.Risk)

			switch stat.Risk {
			case "High":
				f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", columnToLetter(len(columns)), rowNum), highRiskStyle)
			case "Medium":
				f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", columnToLetter(len(columns)), rowNum), mediumRiskStyle)
			}
		}
	} else {
		f.SetCellValue(sheetName, "A2", "no users found")
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully exported statistics for %d users", len(stats)),
		Filename: filename,
		FilePath: filePath,
	}, nil
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
