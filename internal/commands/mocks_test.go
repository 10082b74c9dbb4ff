package commands

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/okra-platform/crudgen/internal/config"
)

type mockConfigLoader struct {
	mock.Mock
}

func (m *mockConfigLoader) LoadConfig(path string) (*config.Config, string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*config.Config), args.String(1), args.Error(2)
}

type mockOutput struct {
	mu    sync.Mutex
	lines []string
}

func (m *mockOutput) Printf(format string, a ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, strings.TrimSuffix(fmt.Sprintf(format, a...), "\n"))
}

func (m *mockOutput) Println(a ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}

func (m *mockOutput) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strings.Join(m.lines, "\n")
}

type mockSignalNotifier struct {
	mock.Mock
}

func (m *mockSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	m.Called(c, sig)
}

func (m *mockSignalNotifier) Stop(c chan<- os.Signal) {
	m.Called(c)
}
