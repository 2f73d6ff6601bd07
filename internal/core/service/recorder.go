package service

import "github.com/contentforge/admin-api/internal/core/ports"

type noopRecorder struct{}

func (noopRecorder) Enqueue(ports.ActivityInput) {}
