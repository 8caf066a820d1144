package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/mind-engage/globoquiz/internal/db"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return NewSQLStore(dbh)
}

func TestStoreRoundTripKeepsQuestionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u, err := s.CreateUser(ctx, "alice", "pw")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	want := threeQuestions()
	id, err := s.CreateQuiz(ctx, u.ID, want)
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	got, err := s.GetQuiz(ctx, id, "")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if got.Title != want.Title || !got.Public || len(got.Questions) != 3 {
		t.Fatalf("got %+v", got)
	}
	for i := range want.Questions {
		if got.Questions[i] != want.Questions[i] {
			t.Fatalf("question %d: got %+v want %+v", i, got.Questions[i], want.Questions[i])
		}
	}
}

func TestPrivateQuizOnlyVisibleToOwner(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice, _ := s.CreateUser(ctx, "alice", "pw")
	bob, _ := s.CreateUser(ctx, "bob", "pw")
	q := capitals()
	q.Public = false
	id, err := s.CreateQuiz(ctx, alice.ID, q)
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := s.GetQuiz(ctx, id, bob.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("bob: err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetQuiz(ctx, id, alice.ID); err != nil {
		t.Fatalf("alice: %v", err)
	}
	list, err := s.ListQuizzes(ctx, ListOpts{ViewerID: bob.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("bob sees %d quizzes", len(list))
	}
}

func TestListQuizzesCountFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u, _ := s.CreateUser(ctx, "alice", "pw")
	if _, err := s.CreateQuiz(ctx, u.ID, capitals()); err != nil {
		t.Fatal(err)
	}
	big := threeQuestions()
	big.Title = "More capitals"
	if _, err := s.CreateQuiz(ctx, u.ID, big); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		op    string
		n     int
		count int
	}{
		{"", 0, 2},
		{">=", 2, 1},
		{"<=", 2, 1},
		{"=", 3, 1},
		{"=", 2, 0},
	}
	for _, tc := range cases {
		list, err := s.ListQuizzes(ctx, ListOpts{ViewerID: u.ID, Operator: tc.op, Questions: tc.n})
		if err != nil {
			t.Fatalf("%s %d: %v", tc.op, tc.n, err)
		}
		if len(list) != tc.count {
			t.Fatalf("%s %d: got %d quizzes, want %d", tc.op, tc.n, len(list), tc.count)
		}
	}
	if _, err := s.ListQuizzes(ctx, ListOpts{Operator: "; DROP TABLE quizzes"}); !errors.Is(err, ErrUnsupportedFilter) {
		t.Fatalf("err = %v, want ErrUnsupportedFilter", err)
	}
}

func TestSearchQuizzes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u, _ := s.CreateUser(ctx, "alice", "pw")
	if _, err := s.CreateQuiz(ctx, u.ID, capitals()); err != nil {
		t.Fatal(err)
	}
	got, err := s.SearchQuizzes(ctx, "capi", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Author != "alice" || got[0].QuestionCount != 1 {
		t.Fatalf("got %+v", got)
	}
	got, _ = s.SearchQuizzes(ctx, "rivers", "")
	if len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestCreateQuizRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u, _ := s.CreateUser(ctx, "alice", "pw")
	if _, err := s.CreateQuiz(ctx, u.ID, Quiz{Title: "Empty"}); !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("empty: err = %v", err)
	}
	q := capitals()
	q.Questions[0].Option4 = ""
	if _, err := s.CreateQuiz(ctx, u.ID, q); !errors.Is(err, ErrInvalidQuiz) {
		t.Fatalf("invalid: err = %v", err)
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if _, err := s.CreateUser(ctx, "alice", "secret"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateUser(ctx, "alice", "other"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate: err = %v", err)
	}
	u, err := s.Authenticate(ctx, "alice", "secret")
	if err != nil || u.Username != "alice" {
		t.Fatalf("authenticate: %+v %v", u, err)
	}
	if _, err := s.Authenticate(ctx, "alice", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, err := s.Authenticate(ctx, "nobody", "secret"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("unknown user: err = %v", err)
	}
}

func TestUserByName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	created, err := s.CreateUser(ctx, "bob", "pw")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	u, err := s.UserByName(ctx, " bob ")
	if err != nil || u.ID != created.ID {
		t.Fatalf("lookup: %+v %v", u, err)
	}
	if _, err := s.UserByName(ctx, "carol"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: err = %v", err)
	}
}

func TestInsertUserMapsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	if _, err := s.CreateUser(ctx, "alice", "pw"); err != nil {
		t.Fatal(err)
	}
	// skips the lookup, as a registration that raced past it would
	err := s.insertUser(ctx, User{ID: "other-id", Username: "alice"}, []byte("hash"))
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
	if _, err := s.CreateUser(ctx, "  ", "pw"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("blank username: err = %v", err)
	}
}
