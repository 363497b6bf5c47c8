package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/image-converter/internal/convert"
	apperrors "github.com/ytget/image-converter/internal/errors"
	"github.com/ytget/image-converter/internal/logger"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// DefaultMaxParallel is used when no positive limit is configured
const DefaultMaxParallel = 2

// Task is one file to convert
type Task struct {
	ID         string
	Input      string
	Format     model.Format
	Output     string // explicit target; empty means derived name in the output directory
	Status     model.Phase
	Err        error
	Size       int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Service handles batch conversion
type Service struct {
	converter   convert.Converter
	tasks       map[string]*Task
	order       []string
	tasksMutex  sync.RWMutex
	maxParallel int
	outputDir   string // empty: next to the input
	onUpdate    func(Task)
}

var _ Runner = (*Service)(nil)

// NewService creates a new batch service
func NewService(converter convert.Converter, maxParallel int) *Service {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	return &Service{
		converter:   converter,
		tasks:       make(map[string]*Task),
		maxParallel: maxParallel,
	}
}

// SetUpdateCallback sets the callback receiving a copy of a task after each change
func (s *Service) SetUpdateCallback(callback func(Task)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// SetOutputDirectory sets the output directory
func (s *Service) SetOutputDirectory(dir string) {
	s.tasksMutex.Lock()
	s.outputDir = dir
	s.tasksMutex.Unlock()
}

// AddTask queues input for conversion to format. The same input and format
// cannot be queued twice while unfinished.
func (s *Service) AddTask(input string, format model.Format, output string) (*Task, error) {
	if input == "" {
		return nil, fmt.Errorf("input path is empty")
	}
	if !format.Valid() {
		return nil, fmt.Errorf("invalid output format")
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.Input == input && task.Format == format && !task.Status.IsFinished() {
			return nil, fmt.Errorf("task already exists for %s as %s", input, format)
		}
	}

	task := &Task{
		ID:     uuid.NewString(),
		Input:  input,
		Format: format,
		Output: output,
		Status: model.PhaseIdle,
	}
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	copied := *task
	return &copied, nil
}

// GetTask returns a copy of a task by ID
func (s *Service) GetTask(id string) (Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return Task{}, false
	}
	return *task, true
}

// GetAllTasks returns copies of all tasks in the order they were added
func (s *Service) GetAllTasks() []Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, *s.tasks[id])
	}
	return tasks
}

// Run converts every pending task, at most maxParallel at a time, and
// returns when all of them finished. The error reports how many failed.
func (s *Service) Run(ctx context.Context) error {
	s.tasksMutex.RLock()
	var pending []*Task
	for _, id := range s.order {
		if task := s.tasks[id]; task.Status == model.PhaseIdle {
			pending = append(pending, task)
		}
	}
	workers := s.maxParallel
	s.tasksMutex.RUnlock()

	if len(pending) == 0 {
		return nil
	}
	if workers > len(pending) {
		workers = len(pending)
	}

	queue := make(chan *Task)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range queue {
				s.runTask(ctx, task)
			}
		}()
	}

	for _, task := range pending {
		queue <- task
	}
	close(queue)
	wg.Wait()

	failed := 0
	s.tasksMutex.RLock()
	for _, task := range pending {
		if task.Status == model.PhaseFailed {
			failed++
		}
	}
	s.tasksMutex.RUnlock()

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(pending))
	}
	return nil
}

func (s *Service) runTask(ctx context.Context, task *Task) {
	s.tasksMutex.Lock()
	task.Status = model.PhaseSubmitting
	task.StartedAt = time.Now()
	outputDir := s.outputDir
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	log := logger.WithFields(logrus.Fields{
		"task":   task.ID,
		"input":  task.Input,
		"format": task.Format.String(),
	})

	output, size, err := s.convertFile(ctx, task, outputDir)

	s.tasksMutex.Lock()
	task.FinishedAt = time.Now()
	if err != nil {
		task.Status = model.PhaseFailed
		task.Err = err
	} else {
		task.Status = model.PhaseSucceeded
		task.Output = output
		task.Size = size
	}
	s.tasksMutex.Unlock()

	if err != nil {
		log.WithError(err).WithField("status", apperrors.GetStatusCode(err)).Error("Conversion failed")
	} else {
		log.WithField("output", output).Info("Conversion completed")
	}
	s.notifyUpdate(task)
}

func (s *Service) convertFile(ctx context.Context, task *Task, outputDir string) (string, int, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	data, err := os.ReadFile(task.Input)
	if err != nil {
		return "", 0, fmt.Errorf("cannot read input: %w", err)
	}

	file := &model.SelectedFile{Name: filepath.Base(task.Input), Data: data}
	converted, err := s.converter.Convert(ctx, file, task.Format)
	if err != nil {
		return "", 0, err
	}

	if task.Output != "" {
		if err := platform.CreateDirectoryIfNotExists(filepath.Dir(task.Output)); err != nil {
			return "", 0, fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(task.Output, converted.Data, platform.DefaultFilePermissions); err != nil {
			return "", 0, fmt.Errorf("failed to write %s: %w", task.Output, err)
		}
		return task.Output, len(converted.Data), nil
	}

	if outputDir == "" {
		outputDir = filepath.Dir(task.Input)
	}
	path, err := platform.SaveResult(outputDir, file.Name, task.Format.Extension(), converted.Data)
	if err != nil {
		return "", 0, err
	}
	return path, len(converted.Data), nil
}

// notifyUpdate calls the update callback with a snapshot of task
func (s *Service) notifyUpdate(task *Task) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	snapshot := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(snapshot)
	}
}
