package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/leengari/memtable/internal/domain/data"
	"github.com/leengari/memtable/internal/domain/schema"
	"github.com/leengari/memtable/internal/export"
	"github.com/leengari/memtable/internal/logging"
	"github.com/leengari/memtable/internal/predicate"
	"github.com/leengari/memtable/internal/render"
	"github.com/leengari/memtable/internal/storage"
)

var errNoSeed = errors.New("no seed file: pass --seed or set seed in the config file")

// runDemo walks through creating, filling and querying a users table.
func runDemo(w io.Writer, logger *slog.Logger) error {
	db := schema.NewDatabase(
		schema.WithLogger(logger),
		schema.WithObserver(logging.NewLoggingObserver(logger)),
	)

	users := db.Create("users")
	if err := users.AddFields(
		schema.NewField("name", schema.FieldTypeText),
		schema.NewField("age", schema.FieldTypeInt),
	); err != nil {
		return err
	}

	for _, row := range [][]data.Cell{
		{data.C("name", "Ana"), data.C("age", 30)},
		{data.C("name", "Bob"), data.C("age", 25)},
		{data.C("name", "Cy"), data.C("age", 30)},
	} {
		if err := users.AddRow(row...); err != nil {
			return err
		}
	}

	// a row with a missing field is rejected and leaves the table unchanged
	if err := users.AddRow(data.C("name", "Dee")); err != nil {
		logger.Info("row rejected as expected", "error", err)
	}

	if row, ok := users.Find(predicate.Equals("age", 30)); ok {
		logger.Info("first user aged 30", "row", row)
	}
	if _, ok := users.Find(predicate.Equals("age", 99)); !ok {
		logger.Info("no user aged 99")
	}

	if _, err := db.Get("orders"); err != nil {
		logger.Info("lookup of missing table failed as expected", "error", err)
	}

	res := render.RowsResult(users, users.FindMany(predicate.Equals("age", 30), 0))
	res.Message = "users aged 30:"
	if err := render.PrintResult(w, res); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return render.PrintResult(w, render.TableResult(users))
}

func loadSeed(logger *slog.Logger, path string) (*schema.Database, *storage.SeedFile, error) {
	if path == "" {
		return nil, nil, errNoSeed
	}
	return storage.LoadDatabase(path, logger, schema.WithObserver(logging.NewLoggingObserver(logger)))
}

func runShow(w io.Writer, logger *slog.Logger, c cli) error {
	db, seed, err := loadSeed(logger, c.seed)
	if err != nil {
		return err
	}

	names := c.tables
	if len(names) == 0 {
		names = seed.TableNames()
	}
	for i, name := range names {
		table, err := db.Get(name)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := render.PrintResult(w, render.TableResult(table)); err != nil {
			return err
		}
	}
	return nil
}

func runFind(w io.Writer, logger *slog.Logger, c cli) error {
	db, _, err := loadSeed(logger, c.seed)
	if err != nil {
		return err
	}
	table, err := db.Get(c.table)
	if err != nil {
		return err
	}

	conds, err := parseConditions(c.where)
	if err != nil {
		return err
	}
	pred, err := predicate.Build(table.Schema(), conds)
	if err != nil {
		return err
	}

	var rows []data.Row
	if c.first {
		if row, ok := table.Find(pred); ok {
			rows = append(rows, row)
		}
	} else {
		rows = table.FindMany(pred, c.limit)
	}
	return render.PrintResult(w, render.RowsResult(table, rows))
}

// parseConditions turns repeated --where values into a field -> literal map.
// A field given twice keeps the last value.
func parseConditions(where []string) (map[string]string, error) {
	conds := make(map[string]string, len(where))
	for _, cond := range where {
		field, value, err := predicate.ParseCondition(cond)
		if err != nil {
			return nil, err
		}
		conds[field] = value
	}
	return conds, nil
}

func runExport(w io.Writer, logger *slog.Logger, c cli) error {
	db, _, err := loadSeed(logger, c.seed)
	if err != nil {
		return err
	}
	table, err := db.Get(c.table)
	if err != nil {
		return err
	}
	return export.Table(w, table, export.Format(c.format))
}
