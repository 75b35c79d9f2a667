package http

import (
	"student-id-card-generation/internal/batch"
)

// --- Request DTOs ---

type createReq struct {
	Name string `json:"name" binding:"required,max=255"`
}

func (r createReq) toInput() batch.CreateInput {
	return batch.CreateInput{Name: r.Name}
}

// --- Response DTOs ---

type batchResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newBatchResp(b batch.Batch) batchResp {
	return batchResp{ID: b.ID, Name: b.Name}
}

type createResp struct {
	Batch batchResp `json:"batch"`
}

func (h *handler) newCreateResp(out batch.CreateOutput) createResp {
	return createResp{Batch: newBatchResp(out.Batch)}
}

type listResp struct {
	Batches []batchResp `json:"batches"`
}

func (h *handler) newListResp(out batch.ListOutput) listResp {
	batches := make([]batchResp, len(out.Batches))
	for i, b := range out.Batches {
		batches[i] = newBatchResp(b)
	}
	return listResp{Batches: batches}
}
