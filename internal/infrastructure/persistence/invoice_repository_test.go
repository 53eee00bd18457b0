package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agence/backend/internal/domain/billing"
	"github.com/agence/backend/internal/domain/shared"
)

func TestGormInvoiceRepository_List(t *testing.T) {
	t.Run("orders by issue date then id descending", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInvoiceRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "cao_fatura"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows([]string{"co_fatura", "co_cliente", "co_sistema", "co_os", "num_nf", "valor", "data_emissao", "corpo_nf", "comissao_cn", "total_imp_inc"}).
			AddRow(21, 4, 1, 45, 1021, "2500.00", "2007-03-10", "Fatura 1021", "10.00", "13.25").
			AddRow(18, 4, 1, 45, 1018, "1000.00", "2007-02-01", "Fatura 1018", "10.00", "13.25")
		mock.ExpectQuery(`SELECT .* FROM "cao_fatura" ORDER BY data_emissao DESC, co_fatura DESC LIMIT \$1`).
			WithArgs(10).
			WillReturnRows(rows)

		page, err := repo.List(context.Background(), billing.InvoiceFilter{}, shared.PageParams{Limit: 10})

		require.NoError(t, err)
		require.Len(t, page.Content, 2)
		assert.Equal(t, int64(21), page.Content[0].ID)
		assert.True(t, page.Content[0].Value.Equal(decimal.RequireFromString("2500.00")))
		require.NotNil(t, page.Content[0].IssueDate)
		assert.Equal(t, "2007-03-10", *page.Content[0].IssueDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies inclusive issue-date bounds and order allow-list", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormInvoiceRepository(gormDB)

		filter := billing.InvoiceFilter{
			StartIssueDate:  "2007-01-01",
			EndIssueDate:    "2007-06-30",
			ServiceOrderIDs: []int64{45, 61},
		}

		mock.ExpectQuery(`SELECT count\(\*\) FROM "cao_fatura" WHERE data_emissao >= \$1 AND data_emissao <= \$2 AND co_os IN \(\$3,\$4\)`).
			WithArgs("2007-01-01", "2007-06-30", int64(45), int64(61)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`SELECT .* FROM "cao_fatura" WHERE data_emissao >= \$1 AND data_emissao <= \$2 AND co_os IN \(\$3,\$4\) ORDER BY data_emissao DESC, co_fatura DESC LIMIT \$5`).
			WithArgs("2007-01-01", "2007-06-30", int64(45), int64(61), 10).
			WillReturnRows(sqlmock.NewRows([]string{"co_fatura"}))

		page, err := repo.List(context.Background(), filter, shared.PageParams{Limit: 10})

		require.NoError(t, err)
		assert.Equal(t, int64(0), page.Total)
		assert.Empty(t, page.Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormServiceOrderRepository_List(t *testing.T) {
	t.Run("filters by consultant and request-date bounds", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormServiceOrderRepository(gormDB)

		filter := billing.ServiceOrderFilter{
			ConsultantIDs:    []string{"anapal"},
			StartRequestDate: "2007-01-01",
			EndRequestDate:   "2007-12-31",
		}

		mock.ExpectQuery(`SELECT count\(\*\) FROM "cao_os" WHERE co_usuario IN \(\$1\) AND dt_sol >= \$2 AND dt_sol <= \$3`).
			WithArgs("anapal", "2007-01-01", "2007-12-31").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows([]string{"co_os", "co_sistema", "co_usuario", "co_arquitetura", "ds_os", "ds_caracteristica", "co_status", "diretoria_sol", "dt_sol", "nu_tel_sol", "usuario_sol"}).
			AddRow(45, 1, "anapal", 1, "Sistema CAO", "Web", 5, "Comercial", "2007-02-01", "1111-1111", "cliente1")
		mock.ExpectQuery(`SELECT .* FROM "cao_os" WHERE co_usuario IN \(\$1\) AND dt_sol >= \$2 AND dt_sol <= \$3 ORDER BY dt_sol DESC, co_os DESC LIMIT \$4`).
			WithArgs("anapal", "2007-01-01", "2007-12-31", 10).
			WillReturnRows(rows)

		page, err := repo.List(context.Background(), filter, shared.PageParams{Limit: 10})

		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, int64(45), page.Content[0].ID)
		assert.Equal(t, "anapal", page.Content[0].ConsultantID)
		require.NotNil(t, page.Content[0].RequestDate)
		assert.Equal(t, "2007-02-01", *page.Content[0].RequestDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
