package backend

import (
	"crypto/subtle"
	"errors"
	"slices"
	"strings"
	"sync"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmptyUsername   = errors.New("username must not be empty")
)

// Account 账户服务保存的用户
type Account struct {
	ID       string
	Username string
	Password string
	FullName string
	ImageURL string
	// Reputation 携带令牌查询声望时返回
	Reputation int32
}

// Contact 账户服务保存的联系人
type Contact struct {
	ID              string
	FullName        string
	FullPhoneNumber string
	ImageURL        string
	Age             int32
}

// Store 进程内的账户数据
type Store struct {
	mu         sync.RWMutex
	accounts   map[string]Account
	contacts   []Contact
	reputation int32
}

func NewStore(accounts []Account, contacts []Contact, reputation int32) *Store {
	s := &Store{
		accounts:   make(map[string]Account, len(accounts)),
		contacts:   slices.Clone(contacts),
		reputation: reputation,
	}
	for _, a := range accounts {
		s.accounts[a.ID] = a
	}
	return s
}

// Authenticate 用户名和密码均匹配时返回账户
func (s *Store) Authenticate(username, password string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.Username != username {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) == 1 {
			return a, true
		}
		return Account{}, false
	}
	return Account{}, false
}

func (s *Store) Account(id string) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return a, nil
}

func (s *Store) Rename(id, username string) (Account, error) {
	if strings.TrimSpace(username) == "" {
		return Account{}, ErrEmptyUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	a.Username = username
	s.accounts[id] = a
	return a, nil
}

// Reputation 未知账户返回全局声望
func (s *Store) Reputation(accountID string) int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.accounts[accountID]; ok {
		return a.Reputation
	}
	return s.reputation
}

// Contacts 按姓名做不区分大小写的子串匹配，空过滤条件返回全部
func (s *Store) Contacts(filter string) []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filter = strings.ToLower(strings.TrimSpace(filter))
	out := make([]Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if filter == "" || strings.Contains(strings.ToLower(c.FullName), filter) {
			out = append(out, c)
		}
	}
	return out
}

// DefaultStore 开发环境使用的种子数据
func DefaultStore() *Store {
	return NewStore(
		[]Account{
			{ID: "1", Username: "alice", Password: "alice-secret", FullName: "Alice Liddell", ImageURL: "https://images.example.com/alice.png", Reputation: 120},
			{ID: "2", Username: "bob", Password: "bob-secret", FullName: "Bob Builder", ImageURL: "https://images.example.com/bob.png", Reputation: 7},
		},
		[]Contact{
			{ID: "c1", FullName: "Carol Danvers", FullPhoneNumber: "+1 555 0101", ImageURL: "https://images.example.com/carol.png", Age: 35},
			{ID: "c2", FullName: "Dave Lister", FullPhoneNumber: "+44 20 7946 0958", ImageURL: "https://images.example.com/dave.png", Age: 29},
			{ID: "c3", FullName: "Erin Caroline", FullPhoneNumber: "+61 2 5550 1234", ImageURL: "https://images.example.com/erin.png", Age: 41},
		},
		42,
	)
}
