// Package snapshot реализует хранилище коллекции членов клуба в виде
// одного JSON-снапшота под фиксированным ключом. Каждая мутация
// полностью перезаписывает файл; порядок записей сохраняется.
// Никакой схемы миграций нет: снапшот — это весь формат хранения.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/models"
)

// ErrMemberNotFound возвращается, когда записи с таким ID нет в коллекции.
var ErrMemberNotFound = errors.New("member not found")

// Storage держит коллекцию в памяти и сериализует её на диск
// при каждой мутации. Запись атомарна: снапшот пишется во временный
// файл и переименовывается поверх старого.
type Storage struct {
	path   string
	log    *slog.Logger
	reload bool

	mu      sync.RWMutex
	members []models.Member
}

// New загружает снапшот из каталога dir под ключом key.
// Отсутствующий или нечитаемый снапшот — не ошибка: коллекция
// заполняется резервным набором seed, который сразу сохраняется
// на диск, чтобы состояние файла было авторитетным с момента старта.
func New(dir, key string, seed []models.Member, log *slog.Logger) (*Storage, error) {
	return newStorage(dir, key, seed, log, false)
}

// NewReader открывает то же хранилище в режиме наблюдателя: коллекция
// перечитывается с диска при каждом чтении, поэтому мутации, сделанные
// другим процессом, видны без перезапуска. Используется планировщиком
// напоминаний, который только читает коллекцию.
func NewReader(dir, key string, seed []models.Member, log *slog.Logger) (*Storage, error) {
	return newStorage(dir, key, seed, log, true)
}

func newStorage(dir, key string, seed []models.Member, log *slog.Logger, reload bool) (*Storage, error) {
	const op = "storage.snapshot.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{
		path:   filepath.Join(dir, key+".json"),
		log:    log,
		reload: reload,
	}

	data, err := os.ReadFile(s.path)
	if err == nil {
		var members []models.Member
		jsonErr := json.Unmarshal(data, &members)
		if jsonErr == nil {
			s.members = members
			return s, nil
		}
		log.Warn("corrupt snapshot, falling back to seed data", sl.Err(jsonErr))
	} else if !os.IsNotExist(err) {
		log.Warn("failed to read snapshot, falling back to seed data", sl.Err(err))
	}

	s.members = cloneMembers(seed)
	if err := s.save(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Create добавляет запись в конец коллекции и сохраняет снапшот.
func (s *Storage) Create(ctx context.Context, member models.Member) error {
	const op = "storage.snapshot.Create"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = append(s.members, member)
	if err := s.save(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Read возвращает запись по ID.
func (s *Storage) Read(ctx context.Context, id string) (*models.Member, error) {
	const op = "storage.snapshot.Read"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if s.reload {
		s.refresh()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrMemberNotFound)
}

// Update заменяет запись с совпадающим ID и сохраняет снапшот.
// Позиция записи в коллекции не меняется.
func (s *Storage) Update(ctx context.Context, member models.Member) error {
	const op = "storage.snapshot.Update"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.members {
		if m.ID == member.ID {
			s.members[i] = member
			if err := s.save(); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%s: %w", op, ErrMemberNotFound)
}

// Remove удаляет запись по ID, возвращает количество удалённых записей.
func (s *Storage) Remove(ctx context.Context, id string) (int, error) {
	const op = "storage.snapshot.Remove"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.members {
		if m.ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			if err := s.save(); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			return 1, nil
		}
	}
	return 0, nil
}

// List возвращает копию всей коллекции в порядке хранения.
func (s *Storage) List(ctx context.Context) ([]models.Member, error) {
	const op = "storage.snapshot.List"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if s.reload {
		s.refresh()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneMembers(s.members), nil
}

// refresh перечитывает снапшот с диска. Нечитаемый или отсутствующий
// файл не считается ошибкой: остаётся последняя загруженная копия.
func (s *Storage) refresh() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("failed to refresh snapshot", sl.Err(err))
		}
		return
	}

	var members []models.Member
	if err := json.Unmarshal(data, &members); err != nil {
		s.log.Warn("corrupt snapshot on refresh", sl.Err(err))
		return
	}

	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
}

// save сериализует коллекцию целиком. Вызывается под мьютексом.
// При ошибке записи коллекция в памяти остаётся впереди снапшота
// до следующей успешной мутации.
func (s *Storage) save() error {
	data, err := json.MarshalIndent(s.members, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func cloneMembers(members []models.Member) []models.Member {
	out := make([]models.Member, len(members))
	copy(out, members)
	return out
}
