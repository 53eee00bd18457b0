package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/agence/backend/internal/domain/client"
	"github.com/agence/backend/internal/domain/consultant"
	"github.com/agence/backend/internal/domain/report"
	"github.com/agence/backend/internal/domain/shared"
)

// GormReportRepository implements report.Repository using GORM raw queries.
// The aggregation runs entirely in the database so that the page window and
// total both come from the same derived row set.
type GormReportRepository struct {
	db      *gorm.DB
	dialect reportDialect
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db, dialect: dialectFor(db)}
}

type consultantTotalRow struct {
	UserID          string          `gorm:"column:user_id"`
	Year            int             `gorm:"column:year"`
	Month           int             `gorm:"column:month"`
	InvoiceValue    decimal.Decimal `gorm:"column:invoice_value"`
	TaxesValue      decimal.Decimal `gorm:"column:taxes_value"`
	NetValue        decimal.Decimal `gorm:"column:net_value"`
	CommissionValue decimal.Decimal `gorm:"column:commission_value"`
	FixedCost       decimal.Decimal `gorm:"column:fixed_cost"`
	Profit          decimal.Decimal `gorm:"column:profit"`
}

type clientTotalRow struct {
	ClientID     int64           `gorm:"column:client_id"`
	Year         int             `gorm:"column:year"`
	Month        int             `gorm:"column:month"`
	InvoiceValue decimal.Decimal `gorm:"column:invoice_value"`
	TaxesValue   decimal.Decimal `gorm:"column:taxes_value"`
	NetValue     decimal.Decimal `gorm:"column:net_value"`
}

// ConsultantMonthlyTotals computes per-consultant per-month sums over the
// invoices issued inside the range, joined with the consultant fixed cost.
// Consultants with no cao_salario row are dropped by the inner join.
func (r *GormReportRepository) ConsultantMonthlyTotals(ctx context.Context, filter report.ConsultantFilter, params shared.PageParams) (shared.Page[report.ConsultantMonthlyTotal], error) {
	params = params.Normalize()
	baseSQL, args := r.consultantQuery(filter)

	total, err := r.countRows(ctx, baseSQL, args)
	if err != nil {
		return shared.Page[report.ConsultantMonthlyTotal]{}, err
	}

	pageSQL := baseSQL + `
		ORDER BY aggregated_data.co_usuario, aggregated_data.year, aggregated_data.month
		LIMIT ? OFFSET ?`
	pageArgs := append(append([]interface{}{}, args...), params.Limit, params.Offset)

	var rows []consultantTotalRow
	if err := r.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Scan(&rows).Error; err != nil {
		return shared.Page[report.ConsultantMonthlyTotal]{}, err
	}

	totals := make([]report.ConsultantMonthlyTotal, len(rows))
	for i, row := range rows {
		totals[i] = report.ConsultantMonthlyTotal{
			UserID:          row.UserID,
			Year:            row.Year,
			Month:           row.Month,
			InvoiceValue:    row.InvoiceValue,
			TaxesValue:      row.TaxesValue,
			NetValue:        row.NetValue,
			CommissionValue: row.CommissionValue,
			FixedCost:       row.FixedCost,
			Profit:          row.Profit,
		}
	}
	return shared.NewPage(totals, total, params), nil
}

// ClientMonthlyTotals computes per-client per-month sums over the invoices
// issued inside the range. Clients carry no commission or fixed cost.
func (r *GormReportRepository) ClientMonthlyTotals(ctx context.Context, filter report.ClientFilter, params shared.PageParams) (shared.Page[report.ClientMonthlyTotal], error) {
	params = params.Normalize()
	baseSQL, args := r.clientQuery(filter)

	total, err := r.countRows(ctx, baseSQL, args)
	if err != nil {
		return shared.Page[report.ClientMonthlyTotal]{}, err
	}

	pageSQL := baseSQL + `
		ORDER BY aggregated_data.co_cliente, aggregated_data.year, aggregated_data.month
		LIMIT ? OFFSET ?`
	pageArgs := append(append([]interface{}{}, args...), params.Limit, params.Offset)

	var rows []clientTotalRow
	if err := r.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Scan(&rows).Error; err != nil {
		return shared.Page[report.ClientMonthlyTotal]{}, err
	}

	totals := make([]report.ClientMonthlyTotal, len(rows))
	for i, row := range rows {
		totals[i] = report.ClientMonthlyTotal{
			ClientID:     row.ClientID,
			Year:         row.Year,
			Month:        row.Month,
			InvoiceValue: row.InvoiceValue,
			TaxesValue:   row.TaxesValue,
			NetValue:     row.NetValue,
		}
	}
	return shared.NewPage(totals, total, params), nil
}

// countRows counts the full aggregated row set behind the page window.
func (r *GormReportRepository) countRows(ctx context.Context, baseSQL string, args []interface{}) (int64, error) {
	var total int64
	countSQL := "SELECT COUNT(*) FROM (" + baseSQL + "\n) AS report_rows"
	if err := r.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// consultantQuery builds the consultant aggregation without ordering or
// window, so the identical statement serves both count and page.
func (r *GormReportRepository) consultantQuery(filter report.ConsultantFilter) (string, []interface{}) {
	args := []interface{}{consultant.SystemID, consultant.ActiveFlag, consultant.RoleCodes}

	consultantScope := `
		SELECT cao_usuario.co_usuario
		FROM cao_usuario
		INNER JOIN permissao_sistema ON cao_usuario.co_usuario = permissao_sistema.co_usuario
		WHERE permissao_sistema.co_sistema = ?
		  AND permissao_sistema.in_ativo = ?
		  AND permissao_sistema.co_tipo_usuario IN ?`
	if len(filter.UserIDs) > 0 {
		consultantScope += `
		  AND cao_usuario.co_usuario IN ?`
		args = append(args, filter.UserIDs)
	}
	args = append(args, filter.Range.Start, filter.Range.End)

	baseSQL := fmt.Sprintf(`
		WITH consultant AS (%s),
		monthly_revenue AS (
			SELECT
				consultant.co_usuario,
				%s AS year,
				%s AS month,
				cao_fatura.valor AS invoice_value,
				cao_fatura.valor * cao_fatura.total_imp_inc / 100.0 AS taxes_value,
				cao_fatura.valor - (cao_fatura.valor * cao_fatura.total_imp_inc / 100.0) AS net_invoice_value,
				(cao_fatura.valor - (cao_fatura.valor * cao_fatura.total_imp_inc / 100.0)) * cao_fatura.comissao_cn / 100.0 AS commission_value
			FROM cao_fatura
			INNER JOIN cao_os ON cao_fatura.co_os = cao_os.co_os
			INNER JOIN consultant ON cao_os.co_usuario = consultant.co_usuario
			WHERE cao_fatura.data_emissao IS NOT NULL
			  AND %s >= ?
			  AND %s <= ?
		),
		aggregated_data AS (
			SELECT
				monthly_revenue.co_usuario,
				monthly_revenue.year,
				monthly_revenue.month,
				ROUND(SUM(monthly_revenue.invoice_value), 2) AS invoice_value,
				ROUND(SUM(monthly_revenue.taxes_value), 2) AS taxes_value,
				ROUND(SUM(monthly_revenue.net_invoice_value), 2) AS net_value,
				ROUND(SUM(monthly_revenue.commission_value), 2) AS commission_value
			FROM monthly_revenue
			GROUP BY monthly_revenue.co_usuario, monthly_revenue.year, monthly_revenue.month
		)
		SELECT
			aggregated_data.co_usuario AS user_id,
			aggregated_data.year AS year,
			aggregated_data.month AS month,
			aggregated_data.invoice_value AS invoice_value,
			aggregated_data.taxes_value AS taxes_value,
			aggregated_data.net_value AS net_value,
			aggregated_data.commission_value AS commission_value,
			cao_salario.brut_salario AS fixed_cost,
			ROUND(aggregated_data.net_value - aggregated_data.commission_value - cao_salario.brut_salario, 2) AS profit
		FROM aggregated_data
		INNER JOIN cao_salario ON aggregated_data.co_usuario = cao_salario.co_usuario`,
		consultantScope,
		r.dialect.yearOf("cao_fatura.data_emissao"),
		r.dialect.monthOf("cao_fatura.data_emissao"),
		r.dialect.monthKeyOf("cao_fatura.data_emissao"),
		r.dialect.monthKeyOf("cao_fatura.data_emissao"),
	)
	return baseSQL, args
}

// clientQuery mirrors consultantQuery for the client report. Invoices join
// clients directly through cao_fatura.co_cliente.
func (r *GormReportRepository) clientQuery(filter report.ClientFilter) (string, []interface{}) {
	args := []interface{}{client.ActiveType}

	clientScope := `
		SELECT cao_cliente.co_cliente
		FROM cao_cliente
		WHERE cao_cliente.tp_cliente = ?`
	if len(filter.ClientIDs) > 0 {
		clientScope += `
		  AND cao_cliente.co_cliente IN ?`
		args = append(args, filter.ClientIDs)
	}
	args = append(args, filter.Range.Start, filter.Range.End)

	baseSQL := fmt.Sprintf(`
		WITH client AS (%s
		),
		monthly_revenue AS (
			SELECT
				client.co_cliente,
				%s AS year,
				%s AS month,
				cao_fatura.valor AS invoice_value,
				cao_fatura.valor * cao_fatura.total_imp_inc / 100.0 AS taxes_value,
				cao_fatura.valor - (cao_fatura.valor * cao_fatura.total_imp_inc / 100.0) AS net_invoice_value
			FROM cao_fatura
			INNER JOIN client ON cao_fatura.co_cliente = client.co_cliente
			WHERE cao_fatura.data_emissao IS NOT NULL
			  AND %s >= ?
			  AND %s <= ?
		),
		aggregated_data AS (
			SELECT
				monthly_revenue.co_cliente,
				monthly_revenue.year,
				monthly_revenue.month,
				ROUND(SUM(monthly_revenue.invoice_value), 2) AS invoice_value,
				ROUND(SUM(monthly_revenue.taxes_value), 2) AS taxes_value,
				ROUND(SUM(monthly_revenue.net_invoice_value), 2) AS net_value
			FROM monthly_revenue
			GROUP BY monthly_revenue.co_cliente, monthly_revenue.year, monthly_revenue.month
		)
		SELECT
			aggregated_data.co_cliente AS client_id,
			aggregated_data.year AS year,
			aggregated_data.month AS month,
			aggregated_data.invoice_value AS invoice_value,
			aggregated_data.taxes_value AS taxes_value,
			aggregated_data.net_value AS net_value
		FROM aggregated_data`,
		clientScope,
		r.dialect.yearOf("cao_fatura.data_emissao"),
		r.dialect.monthOf("cao_fatura.data_emissao"),
		r.dialect.monthKeyOf("cao_fatura.data_emissao"),
		r.dialect.monthKeyOf("cao_fatura.data_emissao"),
	)
	return baseSQL, args
}

// Ensure GormReportRepository implements report.Repository
var _ report.Repository = (*GormReportRepository)(nil)
