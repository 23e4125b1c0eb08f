package domain

import (
	"time"

	"greenhouse-server/internal/infra/utils"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

// ItemState is the persisted portion of one checklist item: completion flag
// plus the value store. Detail field schemas are never persisted.
type ItemState struct {
	ID        shareddomain.Name `json:"id"`
	Completed bool              `json:"completed"`
	Data      ValueStore        `json:"data,omitempty"`
}

// ChecklistRecord is the durable per-greenhouse answer set for one template
type ChecklistRecord struct {
	ID            shareddomain.ID
	Version       shareddomain.Version
	GreenhouseID  shareddomain.ID
	TemplateID    shareddomain.Name
	Items         []ItemState
	ArchivedItems []ItemState
	CreatedAt     utils.Time
	UpdatedAt     utils.Time
}

// ItemByID finds a persisted item state by id
func (r *ChecklistRecord) ItemByID(id shareddomain.Name) (ItemState, bool) {
	for _, item := range r.Items {
		if item.ID == id {
			return item, true
		}
	}
	return ItemState{}, false
}

// SetItem replaces the state for the given item id, appending when absent.
// The replacement is wholesale so the last submitted state always wins.
func (r *ChecklistRecord) SetItem(state ItemState) {
	for i, item := range r.Items {
		if item.ID == state.ID {
			r.Items[i] = state
			r.UpdatedAt = utils.Time{Time: time.Now()}
			return
		}
	}
	r.Items = append(r.Items, state)
	r.UpdatedAt = utils.Time{Time: time.Now()}
}

func NewChecklistRecordBuilder() *checklistRecordBuilder {
	return &checklistRecordBuilder{}
}

type checklistRecordBuilder struct {
	actions []checklistRecordHandler
}

type checklistRecordHandler func(r *ChecklistRecord) error

func (b *checklistRecordBuilder) WithGreenhouseID(value shareddomain.ID) *checklistRecordBuilder {
	b.actions = append(b.actions, func(r *ChecklistRecord) error {
		r.GreenhouseID = value
		return nil
	})
	return b
}

func (b *checklistRecordBuilder) WithTemplateID(value shareddomain.Name) *checklistRecordBuilder {
	b.actions = append(b.actions, func(r *ChecklistRecord) error {
		r.TemplateID = value
		return nil
	})
	return b
}

func (b *checklistRecordBuilder) WithItems(value []ItemState) *checklistRecordBuilder {
	b.actions = append(b.actions, func(r *ChecklistRecord) error {
		r.Items = value
		return nil
	})
	return b
}

func (b *checklistRecordBuilder) Build() (ChecklistRecord, error) {
	now := utils.Time{Time: time.Now()}
	result := ChecklistRecord{
		ID:            shareddomain.ID(utils.GenerateUUID()),
		Version:       1,
		Items:         make([]ItemState, 0),
		ArchivedItems: make([]ItemState, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return ChecklistRecord{}, err
		}
	}

	return result, nil
}
