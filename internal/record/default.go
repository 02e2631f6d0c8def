package record

import (
	"database/sql"
	"math"

	"git.lost.host/meutraa/linefall/internal/game"
	"git.lost.host/meutraa/linefall/internal/resolve"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DefaultRecorder keeps resolved frames in sqlite so that two builds, or two
// implementations, can be checked against each other bit for bit.
type DefaultRecorder struct {
	db *sql.DB
}

func (s *DefaultRecorder) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return errors.Wrap(err, "unable to open frame database")
	}

	initStatement := `
	create table if not exists frames
	  (
		  sum text not null,
		  time real not null,
		  idx integer not null,
		  note real,
		  line integer,
		  x real,
		  y real,
		  landing_x real,
		  landing_y real,
		  angle real,
		  alpha real,
		  visible integer,
		  out_screen integer,
		  hold_head integer,
		  hold_length real,
		  primary key (sum, time, idx)
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create frames table")
	}

	s.db = db
	return nil
}

func (s *DefaultRecorder) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultRecorder) Save(c *game.Chart, now float64, transforms []resolve.Transform) error {
	tx, err := s.db.Begin()
	if nil != err {
		return errors.Wrap(err, "unable to begin frame")
	}
	defer tx.Rollback()

	if _, err := tx.Exec("delete from frames where sum = ? and time = ?", c.Sum, now); nil != err {
		return errors.Wrap(err, "unable to clear frame")
	}

	stmt, err := tx.Prepare(`insert into frames
		(sum, time, idx, note, line, x, y, landing_x, landing_y, angle, alpha, visible, out_screen, hold_head, hold_length)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if nil != err {
		return errors.Wrap(err, "unable to prepare frame")
	}
	defer stmt.Close()

	for i, tr := range transforms {
		var head sql.NullBool
		var length sql.NullFloat64
		if nil != tr.Hold {
			head = sql.NullBool{Bool: tr.Hold.HeadVisible, Valid: true}
			length = sql.NullFloat64{Float64: tr.Hold.Length, Valid: true}
		}
		if _, err := stmt.Exec(c.Sum, now, i, tr.NoteID, tr.LineID,
			tr.Position.X, tr.Position.Y, tr.Landing.X, tr.Landing.Y,
			tr.Angle, tr.Alpha, tr.Visible, tr.OutScreen, head, length); nil != err {
			return errors.Wrapf(err, "unable to save note %v", i)
		}
	}

	return errors.Wrap(tx.Commit(), "unable to commit frame")
}

func (s *DefaultRecorder) Load(c *game.Chart, now float64) ([]resolve.Transform, error) {
	rows, err := s.db.Query(`select note, line, x, y, landing_x, landing_y, angle, alpha,
		visible, out_screen, hold_head, hold_length
		from frames where sum = ? and time = ? order by idx`, c.Sum, now)
	if nil != err {
		return nil, errors.Wrap(err, "unable to load frame")
	}
	defer rows.Close()

	transforms := []resolve.Transform{}
	for rows.Next() {
		var tr resolve.Transform
		var head sql.NullBool
		var length sql.NullFloat64
		if err := rows.Scan(&tr.NoteID, &tr.LineID,
			&tr.Position.X, &tr.Position.Y, &tr.Landing.X, &tr.Landing.Y,
			&tr.Angle, &tr.Alpha, &tr.Visible, &tr.OutScreen, &head, &length); nil != err {
			return nil, errors.Wrap(err, "unable to scan frame")
		}
		if head.Valid {
			tr.Hold = &resolve.HoldBody{HeadVisible: head.Bool, Length: length.Float64, TailY: -length.Float64}
		}
		transforms = append(transforms, tr)
	}
	return transforms, errors.Wrap(rows.Err(), "unable to read frame")
}

// same is exact equality. Zero signs are not kept by sqlite so they are
// not compared.
func same(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func equal(a, b resolve.Transform) bool {
	if a.NoteID != b.NoteID || a.LineID != b.LineID || a.Visible != b.Visible || a.OutScreen != b.OutScreen {
		return false
	}
	if !same(a.Position.X, b.Position.X) || !same(a.Position.Y, b.Position.Y) ||
		!same(a.Landing.X, b.Landing.X) || !same(a.Landing.Y, b.Landing.Y) ||
		!same(a.Angle, b.Angle) || !same(a.Alpha, b.Alpha) {
		return false
	}
	if (nil == a.Hold) != (nil == b.Hold) {
		return false
	}
	return nil == a.Hold || (a.Hold.HeadVisible == b.Hold.HeadVisible && same(a.Hold.Length, b.Hold.Length))
}

// Compare lists every index where actual differs from expected. Floats must
// match exactly. A length difference reports the missing entries
// against a zero transform.
func Compare(expected, actual []resolve.Transform) []Mismatch {
	mismatches := []Mismatch{}
	for i := 0; i < len(expected) || i < len(actual); i++ {
		var e, a resolve.Transform
		if i < len(expected) {
			e = expected[i]
		}
		if i < len(actual) {
			a = actual[i]
		}
		if i >= len(expected) || i >= len(actual) || !equal(e, a) {
			mismatches = append(mismatches, Mismatch{Index: i, Expected: e, Actual: a})
		}
	}
	return mismatches
}
