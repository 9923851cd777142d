package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT,
		google_id TEXT,
		profile_picture TEXT,
		role TEXT NOT NULL DEFAULT 'USER',
		referral_code TEXT UNIQUE NOT NULL,
		referred_by_code TEXT,
		balance REAL NOT NULL DEFAULT 0,
		freeze_balance REAL NOT NULL DEFAULT 0,
		referral_balance REAL NOT NULL DEFAULT 0,
		referral_bonus_total REAL NOT NULL DEFAULT 0,
		kyc_status TEXT NOT NULL DEFAULT 'pending',
		kyc_full_name TEXT,
		kyc_id_type TEXT,
		kyc_id_number TEXT,
		kyc_id_document TEXT,
		kyc_submitted_at DATETIME,
		is_blocked BOOLEAN NOT NULL DEFAULT 0,
		today_date TEXT,
		todays_profit REAL NOT NULL DEFAULT 0,
		total_profit REAL NOT NULL DEFAULT 0,
		task_count INTEGER NOT NULL DEFAULT 0,
		completed_tasks TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTaskTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tasks (
		id TEXT PRIMARY KEY,
		task_id TEXT UNIQUE NOT NULL,
		title TEXT NOT NULL,
		reward REAL NOT NULL,
		frequency TEXT,
		description TEXT,
		link TEXT,
		image_url TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createWithdrawalTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE withdrawals (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		bank TEXT NOT NULL,
		account_name TEXT NOT NULL,
		account_number TEXT NOT NULL,
		amount REAL NOT NULL,
		receipt_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createSettingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME
	);`)
}
