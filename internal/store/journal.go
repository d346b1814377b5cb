package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"lighter-go/internal/config"
)

// Entry 为一条本地提交流水。
type Entry struct {
	ID           string
	TxHash       string
	TxType       string
	AccountIndex int64
	Nonce        uint64
	Status       string
	SubmittedAt  time.Time
}

// Journal 将已提交交易记录在本地 SQLite，便于排查与对账。
type Journal struct {
	db *sql.DB
}

const journalSchema = `
CREATE TABLE IF NOT EXISTS submissions (
	id            TEXT PRIMARY KEY,
	tx_hash       TEXT NOT NULL,
	tx_type       TEXT NOT NULL,
	account_index INTEGER NOT NULL,
	nonce         INTEGER NOT NULL,
	status        TEXT NOT NULL,
	submitted_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_account ON submissions(account_index, nonce);
`

// Open 根据配置初始化提交流水库。
func Open(cfg config.JournalConfig) (*Journal, error) {
	dsn := cfg.Path
	if cfg.InMemory {
		dsn = ":memory:"
	} else {
		if err := ensureDir(filepath.Dir(cfg.Path)); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on", dsn))
	if err != nil {
		return nil, fmt.Errorf("打开 SQLite 数据库失败: %w", err)
	}

	if cfg.InMemory {
		// 内存库每个连接各自独立，必须收敛到单连接。
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("设置 SQLite WAL 模式失败: %w", err)
	}

	if _, err := conn.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("设置 SQLite 同步级别失败: %w", err)
	}

	if _, err := conn.Exec(journalSchema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("初始化流水表失败: %w", err)
	}

	return &Journal{db: conn}, nil
}

// Record 写入一条提交流水。ID 留空时自动生成。
func (j *Journal) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = time.Now().UTC()
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO submissions (id, tx_hash, tx_type, account_index, nonce, status, submitted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.TxHash, entry.TxType, entry.AccountIndex, entry.Nonce, entry.Status,
		entry.SubmittedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("写入提交流水失败: %w", err)
	}
	return nil
}

// Recent 返回指定账户最近的提交流水，按提交时间倒序。
func (j *Journal) Recent(ctx context.Context, accountIndex int64, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT id, tx_hash, tx_type, account_index, nonce, status, submitted_at
		 FROM submissions WHERE account_index = ?
		 ORDER BY submitted_at DESC, nonce DESC LIMIT ?`,
		accountIndex, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("查询提交流水失败: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry Entry
			ts    int64
		)
		if err := rows.Scan(&entry.ID, &entry.TxHash, &entry.TxType, &entry.AccountIndex,
			&entry.Nonce, &entry.Status, &ts); err != nil {
			return nil, fmt.Errorf("读取提交流水失败: %w", err)
		}
		entry.SubmittedAt = time.UnixMilli(ts).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历提交流水失败: %w", err)
	}

	return entries, nil
}

// DB 返回底层 *sql.DB.
func (j *Journal) DB() *sql.DB {
	return j.db
}

// Close 关闭数据库连接。
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

func ensureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("创建目录 %q 失败: %w", path, err)
	}
	return nil
}
