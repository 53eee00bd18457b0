package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agence/backend/internal/domain/shared"
)

func TestGormConsultantRepository_List(t *testing.T) {
	t.Run("scopes by active CAO permission and orders by id", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormConsultantRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "cao_usuario" INNER JOIN permissao_sistema ON cao_usuario\.co_usuario = permissao_sistema\.co_usuario WHERE permissao_sistema\.co_sistema = \$1 AND permissao_sistema\.in_ativo = \$2 AND permissao_sistema\.co_tipo_usuario IN \(\$3,\$4,\$5\)`).
			WithArgs(1, "S", 0, 1, 2).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows([]string{"co_usuario", "no_usuario", "dt_alteracao", "no_email"}).
			AddRow("anapal", "Ana Paula", "2007-08-24 16:37:02", "anapal@agence.com.br").
			AddRow("cbrandao", "Carlos Brandao", "2007-08-24 16:38:10", nil)
		mock.ExpectQuery(`SELECT "cao_usuario"\..* FROM "cao_usuario" INNER JOIN permissao_sistema .* ORDER BY cao_usuario\.co_usuario LIMIT \$6`).
			WithArgs(1, "S", 0, 1, 2, 10).
			WillReturnRows(rows)

		page, err := repo.List(context.Background(), shared.PageParams{Limit: 10, Offset: 0})

		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.False(t, page.HasNext)
		require.Len(t, page.Content, 2)
		assert.Equal(t, "anapal", page.Content[0].ID)
		assert.Equal(t, "Ana Paula", page.Content[0].Name)
		require.NotNil(t, page.Content[0].Email)
		assert.Equal(t, "anapal@agence.com.br", *page.Content[0].Email)
		assert.Nil(t, page.Content[1].Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clamps non-positive limit to one", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormConsultantRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "cao_usuario"`).
			WithArgs(1, "S", 0, 1, 2).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		mock.ExpectQuery(`SELECT "cao_usuario"\..* LIMIT \$6`).
			WithArgs(1, "S", 0, 1, 2, 1).
			WillReturnRows(sqlmock.NewRows([]string{"co_usuario", "no_usuario", "dt_alteracao"}).
				AddRow("anapal", "Ana Paula", "2007-08-24 16:37:02"))

		page, err := repo.List(context.Background(), shared.PageParams{Limit: 0, Offset: 0})

		require.NoError(t, err)
		assert.Equal(t, 1, page.Limit)
		assert.True(t, page.HasNext)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
