package repository

import sq "github.com/Masterminds/squirrel"

// psql is the statement builder shared by every repository in this package,
// configured for PostgreSQL dollar placeholders. Stats queries that need
// FILTER clauses bypass it and use raw SQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
