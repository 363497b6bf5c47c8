package batch

import (
	"context"

	"github.com/ytget/image-converter/internal/model"
)

// Runner defines the interface for the batch conversion service.
type Runner interface {
	SetUpdateCallback(func(Task))
	AddTask(input string, format model.Format, output string) (*Task, error)
	GetTask(id string) (Task, bool)
	GetAllTasks() []Task
	Run(ctx context.Context) error

	// SetOutputDirectory sets where results without an explicit output go
	SetOutputDirectory(dir string)
}
