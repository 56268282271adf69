package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/infrastructure/security"
)

type stubUserRepo struct {
	users     map[string]*domain.User // by username
	nextID    int
	findErr   error
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.SavedRecipes = append([]string(nil), u.SavedRecipes...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[stored.Username] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) AppendSavedRecipe(_ context.Context, userID, recipeID string) ([]string, error) {
	for _, u := range r.users {
		if u.ID == userID {
			u.SavedRecipes = append(u.SavedRecipes, recipeID)
			return append([]string(nil), u.SavedRecipes...), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// stubHasher prefixes the password; it records how often Verify ran.
type stubHasher struct {
	hashErr  error
	verifies int
}

func (h *stubHasher) Hash(plaintext string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plaintext, nil
}

func (h *stubHasher) Verify(plaintext, storedHash string) bool {
	h.verifies++
	return storedHash == "hashed:"+plaintext
}

type stubIssuer struct {
	err      error
	subjects []string
}

func (i *stubIssuer) Issue(subjectID string) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	i.subjects = append(i.subjects, subjectID)
	return "token-for-" + subjectID, nil
}

func newAuthSvc(repo *stubUserRepo) (*AuthService, *stubHasher, *stubIssuer) {
	h := &stubHasher{}
	iss := &stubIssuer{}
	return NewAuthService(repo, h, iss, zerolog.Nop()), h, iss
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _, _ := newAuthSvc(repo)

	user, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated ID")
	}
	if user.PasswordHash != "hashed:pw1" {
		t.Fatalf("expected password to be hashed, got %q", user.PasswordHash)
	}
	if user.SavedRecipes == nil || len(user.SavedRecipes) != 0 {
		t.Fatalf("expected empty saved recipes, got %v", user.SavedRecipes)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newAuthSvc(newStubUserRepo())

	for _, tc := range []struct{ username, password string }{
		{"", "pw"},
		{"   ", "pw"},
		{"bob", ""},
	} {
		if _, err := svc.Register(context.Background(), tc.username, tc.password); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("(%q,%q): expected ErrInvalidInput, got %v", tc.username, tc.password, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newAuthSvc(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "pw2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_HashError(t *testing.T) {
	repo := newStubUserRepo()
	svc, h, _ := newAuthSvc(repo)
	h.hashErr = domain.ErrInvalidInput

	if _, err := svc.Register(context.Background(), "alice", "pw"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected hash error to propagate, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatal("nothing should be stored when hashing fails")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _, iss := newAuthSvc(repo)

	registered, _ := svc.Register(context.Background(), "carol", "s3cret")

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "token-for-"+registered.ID {
		t.Fatalf("unexpected token %q", token)
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(iss.subjects) != 1 || iss.subjects[0] != registered.ID {
		t.Fatalf("token must be issued for the user id, got %v", iss.subjects)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	repo := newStubUserRepo()
	svc, h, iss := newAuthSvc(repo)
	_, _ = svc.Register(context.Background(), "dave", "goodpass")

	_, _, wrongPw := svc.Login(context.Background(), "dave", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost", "badpass")

	if wrongPw != domain.ErrInvalidCredentials || unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", wrongPw, unknown)
	}
	if h.verifies != 2 {
		t.Fatalf("both paths must run one hash comparison, got %d", h.verifies)
	}
	if len(iss.subjects) != 0 {
		t.Fatal("no token must be issued on failure")
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, h, _ := newAuthSvc(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if h.verifies != 0 {
		t.Fatal("empty input must not reach the hasher")
	}
}

func TestAuthService_Login_StoreErrorIsNotMasked(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("mongo unavailable")
	svc, _, _ := newAuthSvc(repo)

	_, _, err := svc.Login(context.Background(), "alice", "pw")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store failures must propagate as-is, got %v", err)
	}
}

func TestAuthService_Login_IssuerError(t *testing.T) {
	repo := newStubUserRepo()
	svc, _, iss := newAuthSvc(repo)
	_, _ = svc.Register(context.Background(), "erin", "pw")
	iss.err = domain.ErrMissingSecret

	if _, _, err := svc.Login(context.Background(), "erin", "pw"); !errors.Is(err, domain.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

// Register, login and verify with the real bcrypt hasher and JWT pair.
func TestAuthService_EndToEndWithRealSecurity(t *testing.T) {
	tokens, err := security.NewJWT("scenario-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	repo := newStubUserRepo()
	svc := NewAuthService(repo, security.NewBcryptHasher(bcrypt.MinCost), tokens, zerolog.Nop())
	ctx := context.Background()

	alice, err := svc.Register(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("register alice: %v", err)
	}
	if !strings.HasPrefix(alice.PasswordHash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", alice.PasswordHash)
	}
	if _, err := svc.Register(ctx, "alice", "pw2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	token, _, err := svc.Login(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("login alice: %v", err)
	}
	subject, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != alice.ID {
		t.Fatalf("expected subject %q, got %q", alice.ID, subject)
	}

	if _, _, err := svc.Login(ctx, "alice", "wrongpw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
