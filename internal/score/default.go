package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"git.lost.host/meutraa/slide/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotInitialised = errors.New("score database is not open")

type DefaultScorer struct {
	db *sql.DB
}

type InputsCompact struct {
	Index int
	Times []time.Duration
}

func compactInputs(inputs []game.Input) []InputsCompact {
	count := 0
	for _, i := range inputs {
		if i.Index+1 > count {
			count = i.Index + 1
		}
	}
	ins := make([]InputsCompact, count)
	for i := range ins {
		ins[i] = InputsCompact{Index: i, Times: []time.Duration{}}
	}
	for _, i := range inputs {
		if i.Index < 0 {
			continue
		}
		ins[i.Index].Times = append(ins[i.Index].Times, i.HitTime)
	}
	return ins
}

func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Index: i.Index, HitTime: t})
		}
	}
	return ins
}

// One character per slider, in chart order
var resultCodes = map[game.HitResult]byte{
	game.None:  '-',
	game.Miss:  '0',
	game.Meh:   '1',
	game.Good:  '2',
	game.Great: '3',
}

func compactResults(results []game.HitResult) string {
	var b strings.Builder
	for _, r := range results {
		c, ok := resultCodes[r]
		if !ok {
			c = '-'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func uncompactResults(s string) []game.HitResult {
	results := make([]game.HitResult, len(s))
	for i := 0; i < len(s); i++ {
		for r, c := range resultCodes {
			if s[i] == c {
				results[i] = r
				break
			}
		}
	}
	return results
}

func (s *DefaultScorer) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists scores
	  (
		  id integer not null primary key,
		  sum text,
		  rate real,
		  results text,
		  inputs bytearray
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create scores table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultScorer) hashChart(c *game.Chart) string {
	sum := sha256.Sum256([]byte(c.Section))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Save(c *game.Chart, results []game.HitResult, inputs []game.Input, rate float64) error {
	if nil == s.db {
		return ErrNotInitialised
	}
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		return fmt.Errorf("unable to marshal inputs: %w", err)
	}
	_, err = s.db.Exec("insert into scores(sum, rate, results, inputs) values(?, ?, ?, ?)", s.hashChart(c), rate, compactResults(results), data)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(c *game.Chart) []History {
	histories := []History{}
	if nil == s.db {
		return histories
	}
	rows, err := s.db.Query("select sum, rate, results, inputs from scores where sum = ? order by id", s.hashChart(c))
	if nil != err {
		log.Println("unable to load scores", err)
		return histories
	}
	defer rows.Close()
	for rows.Next() {
		var sum, results string
		var inputs []byte
		var rate float64
		if err := rows.Scan(&sum, &rate, &results, &inputs); nil != err {
			log.Println("unable to scan score", err)
			continue
		}
		var ins []InputsCompact
		if err := json.Unmarshal(inputs, &ins); nil != err {
			log.Println("unable to unmarshal input history", err)
			continue
		}
		histories = append(histories, History{
			Sum:     sum,
			Results: uncompactResults(results),
			Inputs:  uncompactInputs(ins),
			Rate:    rate,
		})
	}
	return histories
}

func (s *DefaultScorer) Tally(results []game.HitResult) Tally {
	tally := Tally{Counts: map[game.HitResult]int{}, Total: len(results)}
	for _, r := range results {
		if r == game.None {
			continue
		}
		tally.Counts[r]++
		tally.Judged++
	}
	return tally
}
