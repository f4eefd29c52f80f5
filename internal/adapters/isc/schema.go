package isc

import "go.trai.ch/idgov/internal/core/domain"

// resourceDTO is one entry of a collection listing response.
type resourceDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// jobStartDTO is the request body for starting a backend job.
type jobStartDTO struct {
	Kind     string `json:"kind"`
	TargetID string `json:"targetId"`
}

// jobCreatedDTO is the response body of a job start.
type jobCreatedDTO struct {
	ID string `json:"id"`
}

// jobDTO is the job status record returned by the tenant.
type jobDTO struct {
	ID       string          `json:"id"`
	TargetID string          `json:"targetId"`
	Kind     string          `json:"kind"`
	Status   string          `json:"status"`
	Messages []jobMessageDTO `json:"messages"`
}

// jobMessageDTO is one diagnostic message on a terminal job.
type jobMessageDTO struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

func (d jobDTO) toDomain() *domain.Job {
	job := &domain.Job{
		ID:       d.ID,
		TargetID: d.TargetID,
		Kind:     domain.JobKind(d.Kind),
		Status:   domain.JobStatus(d.Status),
	}
	for _, m := range d.Messages {
		job.Messages = append(job.Messages, domain.JobMessage{Key: m.Key, Text: m.Text})
	}
	return job
}

func toResources(dtos []resourceDTO, t domain.ResourceType) []domain.Resource {
	resources := make([]domain.Resource, 0, len(dtos))
	for _, dto := range dtos {
		resources = append(resources, domain.Resource{
			ID:          dto.ID,
			Name:        dto.Name,
			Description: dto.Description,
			Type:        t,
		})
	}
	return resources
}
