package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// reportDialect renders the date expressions that differ between sqlite and
// postgres. The legacy sqlite file stores dates as ISO text, postgres as
// proper date columns.
type reportDialect struct {
	sqlite bool
}

func dialectFor(db *gorm.DB) reportDialect {
	return reportDialect{sqlite: db.Dialector.Name() == "sqlite"}
}

// yearOf extracts the calendar year of a date column as an integer.
func (d reportDialect) yearOf(col string) string {
	if d.sqlite {
		return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", col)
	}
	return fmt.Sprintf("CAST(EXTRACT(YEAR FROM %s) AS INTEGER)", col)
}

// monthOf extracts the calendar month of a date column as an integer.
func (d reportDialect) monthOf(col string) string {
	if d.sqlite {
		return fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", col)
	}
	return fmt.Sprintf("CAST(EXTRACT(MONTH FROM %s) AS INTEGER)", col)
}

// monthKeyOf renders a date column as its YYYY-MM key. The report range
// bounds compare against this key lexically, which is equivalent to a
// chronological comparison for the fixed-width format.
func (d reportDialect) monthKeyOf(col string) string {
	if d.sqlite {
		return fmt.Sprintf("strftime('%%Y-%%m', %s)", col)
	}
	return fmt.Sprintf("to_char(%s, 'YYYY-MM')", col)
}
