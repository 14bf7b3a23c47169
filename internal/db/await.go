package db

import (
	"time" // Retry interval

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// WaitFor retries an idempotent probe on a fixed interval until it succeeds.
// There is no upper bound on attempts; progress is logged between retries.
func WaitFor(probe func() error, interval time.Duration) {
	for {
		if err := probe(); err == nil {
			return
		}
		logrus.Info("Database not yet available, trying again ...")
		time.Sleep(interval)
	}
}

// Await blocks until the database behind dsn accepts connections, then
// returns an open handle.
func Await(dsn string) *gorm.DB {
	logrus.Info("Waiting for database to start ...")
	var db *gorm.DB
	WaitFor(func() error {
		conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return err
		}
		db = conn
		return nil
	}, time.Second)
	logrus.Info("Database is now available.")
	return db
}
