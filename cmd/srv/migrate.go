package main

import (
	"fmt"

	"github.com/minerush/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}

	s.loadLogger()
	s.db = s.newDatabase()
	s.loadContext()
	s.migrateDB()

	version := ct.String("version")
	if version == "" {
		return nil
	}

	migrator, ok := migration.Migrators[version]
	if !ok {
		return fmt.Errorf("not found version %s", version)
	}

	return migrator(s.ctx)
}
