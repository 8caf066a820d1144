package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (s *SQLStore) StartPlay(ctx context.Context, quizID, viewerID string, q Quiz) (Play, error) {
	sess, err := NewSession(q)
	if err != nil {
		return Play{}, err
	}
	raw, err := json.Marshal(q)
	if err != nil {
		return Play{}, fmt.Errorf("encode quiz: %w", err)
	}
	p := Play{ID: uuid.NewString(), QuizID: quizID, ViewerID: viewerID, Quiz: q, Session: sess}
	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx, `INSERT INTO plays
		(id,quiz_id,viewer_id,quiz_json,idx,score,total,answered,guess,finished,created_at,updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		p.ID, quizID, viewerID, string(raw),
		sess.Index, sess.Score, sess.Total, sess.Answered, sess.Guess, sess.Finished, now, now)
	if err != nil {
		return Play{}, fmt.Errorf("insert play: %w", err)
	}
	return p, nil
}

func (s *SQLStore) GetPlay(ctx context.Context, id, viewerID string) (Play, error) {
	p := Play{ID: id, ViewerID: viewerID}
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT quiz_id,quiz_json,idx,score,total,answered,guess,finished
		FROM plays WHERE id=$1 AND viewer_id=$2`, id, viewerID).
		Scan(&p.QuizID, &raw, &p.Session.Index, &p.Session.Score, &p.Session.Total,
			&p.Session.Answered, &p.Session.Guess, &p.Session.Finished)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Play{}, ErrNotFound
		}
		return Play{}, err
	}
	if err := json.Unmarshal([]byte(raw), &p.Quiz); err != nil {
		return Play{}, fmt.Errorf("decode play %s: %w", id, err)
	}
	return p, nil
}

// AdvancePlay is a compare-and-swap on the position columns, so two requests
// racing on the same question cannot both record an answer.
func (s *SQLStore) AdvancePlay(ctx context.Context, id string, from, to Session) error {
	res, err := s.db.ExecContext(ctx, `UPDATE plays
		SET idx=$1, score=$2, answered=$3, guess=$4, finished=$5, updated_at=$6
		WHERE id=$7 AND idx=$8 AND score=$9 AND answered=$10 AND finished=$11`,
		to.Index, to.Score, to.Answered, to.Guess, to.Finished, time.Now().Unix(),
		id, from.Index, from.Score, from.Answered, from.Finished)
	if err != nil {
		return fmt.Errorf("update play: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStalePlay
	}
	return nil
}
