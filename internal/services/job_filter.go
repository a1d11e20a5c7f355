package services

import (
	"strings"

	"workshop-system/internal/entities"
)

// MatchesSearch reports whether the query is a case-insensitive substring
// of the job's customer name, brand, model or registration number.
func MatchesSearch(job entities.Job, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{job.CustomerName, job.CarBrand, job.CarModel, job.RegistrationNumber} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterJobs derives a filtered view of the job set: exact status match
// (empty or "All Status" disables it) AND text search. The input slice is
// never mutated.
func FilterJobs(jobs []entities.Job, status string, query string) []entities.Job {
	if status == "All Status" {
		status = ""
	}
	filtered := make([]entities.Job, 0, len(jobs))
	for _, job := range jobs {
		if status != "" && string(job.Status) != status {
			continue
		}
		if !MatchesSearch(job, query) {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered
}

// PartitionJobs splits a job snapshot into the mechanic dashboard's two
// buckets. Every job lands in exactly one of them.
func PartitionJobs(jobs []entities.Job) (active, completed []entities.Job) {
	active = make([]entities.Job, 0, len(jobs))
	completed = make([]entities.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Status.IsActive() {
			active = append(active, job)
		} else {
			completed = append(completed, job)
		}
	}
	return active, completed
}
