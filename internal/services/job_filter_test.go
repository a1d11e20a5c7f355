package services

import (
	"testing"

	"workshop-system/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleJobs() []entities.Job {
	return []entities.Job{
		{ID: "a", CustomerName: "Arjun Menon", CarBrand: "Hyundai", CarModel: "Creta 1.5 CRDi", RegistrationNumber: "TN-10-AB-1234", Status: entities.StatusDone},
		{ID: "b", CustomerName: "Vikram Singh", CarBrand: "VW", CarModel: "Polo GT TSI", RegistrationNumber: "TN-09-XY-5678", Status: entities.StatusPending},
		{ID: "c", CustomerName: "Priya Raman", CarBrand: "Hyundai", CarModel: "i20 N Line", RegistrationNumber: "KA-01-CD-9999", Status: entities.StatusInProgress},
		{ID: "d", CustomerName: "Arjun Kumar", CarBrand: "BMW", CarModel: "330i", RegistrationNumber: "TN-22-ZZ-0001", Status: entities.StatusDelivered},
	}
}

func idsOf(jobs []entities.Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestFilterJobs_StatusOnly(t *testing.T) {
	out := FilterJobs(sampleJobs(), "Pending", "")
	assert.Equal(t, []string{"b"}, idsOf(out))

	for _, job := range out {
		assert.Equal(t, entities.StatusPending, job.Status)
	}
}

func TestFilterJobs_AllStatusMeansNoFilter(t *testing.T) {
	assert.Len(t, FilterJobs(sampleJobs(), "All Status", ""), 4)
	assert.Len(t, FilterJobs(sampleJobs(), "", ""), 4)
}

func TestFilterJobs_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	assert.Equal(t, []string{"a", "d"}, idsOf(FilterJobs(sampleJobs(), "", "arjun")))
	assert.Equal(t, []string{"a", "c"}, idsOf(FilterJobs(sampleJobs(), "", "HYUNDAI")))
	assert.Equal(t, []string{"b"}, idsOf(FilterJobs(sampleJobs(), "", "polo")))
	assert.Equal(t, []string{"c"}, idsOf(FilterJobs(sampleJobs(), "", "ka-01")))
}

func TestFilterJobs_StatusAndSearchAreANDed(t *testing.T) {
	// "arjun" matches jobs a and d, but only d is Delivered.
	out := FilterJobs(sampleJobs(), "Delivered", "arjun")
	assert.Equal(t, []string{"d"}, idsOf(out))
}

func TestFilterJobs_NoFalseNegatives(t *testing.T) {
	jobs := sampleJobs()
	out := FilterJobs(jobs, "Done", "hyundai")
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)

	// The source set is untouched.
	assert.Len(t, jobs, 4)
}

func TestPartitionJobs_ExactlyOneBucket(t *testing.T) {
	jobs := sampleJobs()
	active, completed := PartitionJobs(jobs)

	assert.Equal(t, []string{"b", "c"}, idsOf(active))
	assert.Equal(t, []string{"a", "d"}, idsOf(completed))
	assert.Equal(t, len(jobs), len(active)+len(completed))

	seen := map[string]int{}
	for _, j := range active {
		seen[j.ID]++
	}
	for _, j := range completed {
		seen[j.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "job %s must appear in exactly one partition", id)
	}
}
