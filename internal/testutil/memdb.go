// Package testutil provides an in-memory stand-in for the relational store so
// services and handlers can be exercised without a database.
package testutil

import (
	"context"
	"sync"

	"github.com/saulo-duarte/quiz-survey-api/internal/answer"
	"github.com/saulo-duarte/quiz-survey-api/internal/question"
	"github.com/saulo-duarte/quiz-survey-api/internal/quiz"
	"github.com/saulo-duarte/quiz-survey-api/internal/user"
)

// MemDB keeps rows in insertion order and assigns ids starting at 1.
// It implements storage.Scope and counts how often a connection is taken and
// given back.
type MemDB struct {
	mu sync.Mutex

	users     []user.User
	quizzes   []quiz.Quiz
	questions []question.Question
	answers   []answer.Answer

	failures map[string]error
	calls    []string

	Acquired int
	Released int
}

func NewMemDB() *MemDB {
	return &MemDB{failures: map[string]error{}}
}

func (db *MemDB) Scoped(ctx context.Context, fn func(ctx context.Context) error) error {
	db.mu.Lock()
	db.Acquired++
	db.mu.Unlock()

	defer func() {
		db.mu.Lock()
		db.Released++
		db.mu.Unlock()
	}()
	return fn(ctx)
}

// FailOn makes the named operation (e.g. "quizzes.Exists") return err.
func (db *MemDB) FailOn(op string, err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.failures[op] = err
}

// Calls lists the repository operations performed so far, in order.
func (db *MemDB) Calls() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]string(nil), db.calls...)
}

func (db *MemDB) ResetCalls() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.calls = nil
}

func (db *MemDB) Counts() (users, quizzes, questions, answers int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), len(db.quizzes), len(db.questions), len(db.answers)
}

func (db *MemDB) record(op string) error {
	db.calls = append(db.calls, op)
	return db.failures[op]
}

func (db *MemDB) UserRepo() user.UserRepository             { return userRepo{db} }
func (db *MemDB) QuizRepo() quiz.QuizRepository             { return quizRepo{db} }
func (db *MemDB) QuestionRepo() question.QuestionRepository { return questionRepo{db} }
func (db *MemDB) AnswerRepo() answer.AnswerRepository       { return answerRepo{db} }

// window mirrors how the SQL layer treats skip/limit: negative values disable
// the clause.
func window(n, skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if skip > n {
		skip = n
	}
	end := n
	if limit >= 0 && skip+limit < n {
		end = skip + limit
	}
	return skip, end
}

type userRepo struct{ db *MemDB }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("users.Create"); err != nil {
		return err
	}
	u.ID = int64(len(r.db.users) + 1)
	r.db.users = append(r.db.users, *u)
	return nil
}

func (r userRepo) List(_ context.Context, skip, limit int) ([]*user.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("users.List"); err != nil {
		return nil, err
	}
	from, to := window(len(r.db.users), skip, limit)
	out := []*user.User{}
	for i := from; i < to; i++ {
		u := r.db.users[i]
		out = append(out, &u)
	}
	return out, nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("users.GetByID"); err != nil {
		return nil, err
	}
	for _, u := range r.db.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("users.Exists"); err != nil {
		return false, err
	}
	for _, u := range r.db.users {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r userRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("users.ExistsByEmail"); err != nil {
		return false, err
	}
	for _, u := range r.db.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type quizRepo struct{ db *MemDB }

func (r quizRepo) Create(_ context.Context, q *quiz.Quiz) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("quizzes.Create"); err != nil {
		return err
	}
	q.ID = int64(len(r.db.quizzes) + 1)
	r.db.quizzes = append(r.db.quizzes, *q)
	return nil
}

func (r quizRepo) List(_ context.Context, skip, limit int) ([]*quiz.Quiz, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("quizzes.List"); err != nil {
		return nil, err
	}
	from, to := window(len(r.db.quizzes), skip, limit)
	out := []*quiz.Quiz{}
	for i := from; i < to; i++ {
		q := r.db.quizzes[i]
		out = append(out, &q)
	}
	return out, nil
}

func (r quizRepo) GetByID(_ context.Context, id int64) (*quiz.Quiz, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("quizzes.GetByID"); err != nil {
		return nil, err
	}
	for _, q := range r.db.quizzes {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, nil
}

func (r quizRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("quizzes.Exists"); err != nil {
		return false, err
	}
	for _, q := range r.db.quizzes {
		if q.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type questionRepo struct{ db *MemDB }

func (r questionRepo) Create(_ context.Context, q *question.Question) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("questions.Create"); err != nil {
		return err
	}
	q.ID = int64(len(r.db.questions) + 1)
	r.db.questions = append(r.db.questions, *q)
	return nil
}

func (r questionRepo) GetByID(_ context.Context, id int64) (*question.Question, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("questions.GetByID"); err != nil {
		return nil, err
	}
	for _, q := range r.db.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, nil
}

type answerRepo struct{ db *MemDB }

func (r answerRepo) Create(_ context.Context, a *answer.Answer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("answers.Create"); err != nil {
		return err
	}
	a.ID = int64(len(r.db.answers) + 1)
	r.db.answers = append(r.db.answers, *a)
	return nil
}

func (r answerRepo) GetByID(_ context.Context, id int64) (*answer.Answer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.record("answers.GetByID"); err != nil {
		return nil, err
	}
	for _, a := range r.db.answers {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}
