package stores

import (
	"sync"

	"github.com/hitesh009911/grub-stack-00-sub001/client"
	"github.com/hitesh009911/grub-stack-00-sub001/models"
	"github.com/hitesh009911/grub-stack-00-sub001/utils"
	"gorm.io/gorm"
)

// SessionStore holds the authenticated identity for the process.
// Admin sessions persist under their own key so an admin login does
// not clobber a remembered customer session.
type SessionStore struct {
	db   *gorm.DB
	auth *client.AuthClient

	mu      sync.RWMutex
	current *models.User
}

func NewSessionStore(db *gorm.DB, auth *client.AuthClient) *SessionStore {
	ss := &SessionStore{db: db, auth: auth}
	ss.hydrate()
	return ss
}

func (ss *SessionStore) hydrate() {
	var user models.User
	if ok, err := LoadState(ss.db, StateKeyUser, &user); err == nil && ok {
		ss.current = &user
		return
	}

	var admin models.User
	if ok, err := LoadState(ss.db, StateKeyAdmin, &admin); err == nil && ok {
		ss.current = &admin
	}
}

func stateKeyFor(user *models.User) string {
	if user.Role == models.RoleAdmin {
		return StateKeyAdmin
	}
	return StateKeyUser
}

// Login authenticates against the identity backend and persists the
// session on success.
func (ss *SessionStore) Login(email, password string) (*models.User, error) {
	user, err := ss.auth.Login(email, password)
	if err != nil {
		return nil, err
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.current = user
	if err := SaveState(ss.db, stateKeyFor(user), user); err != nil {
		utils.ErrorLogger.Printf("Error persisting session: %v", err)
	}

	utils.InfoLogger.Printf("Logged in as %s (role=%s)", user.Email, user.Role)
	return user, nil
}

// Register creates an account and signs in as it.
func (ss *SessionStore) Register(req client.RegisterRequest) (*models.User, error) {
	user, err := ss.auth.Register(req)
	if err != nil {
		return nil, err
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.current = user
	if err := SaveState(ss.db, stateKeyFor(user), user); err != nil {
		utils.ErrorLogger.Printf("Error persisting session: %v", err)
	}

	utils.InfoLogger.Printf("Registered %s (role=%s)", user.Email, user.Role)
	return user, nil
}

// Logout destroys the session and every persisted copy. Both keys go:
// a remembered user blob left behind by an earlier login must not
// resurrect on the next start.
func (ss *SessionStore) Logout() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	DeleteState(ss.db, StateKeyUser)
	DeleteState(ss.db, StateKeyAdmin)
	ss.current = nil
}

// UpdateUser replaces the session identity wholesale and re-persists.
func (ss *SessionStore) UpdateUser(user models.User) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.current = &user
	if err := SaveState(ss.db, stateKeyFor(&user), &user); err != nil {
		utils.ErrorLogger.Printf("Error persisting session: %v", err)
	}
}

// Current returns the signed-in user, or nil.
func (ss *SessionStore) Current() *models.User {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	if ss.current == nil {
		return nil
	}
	user := *ss.current
	return &user
}
