package search

import (
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	"github.com/meilisearch/meilisearch-go"
	"github.com/sirupsen/logrus"
)

const membersIndex = "members"

// MemberDocument is the searchable projection of a member. Points are included
// so the directory can sort by score; the document is display data only and is
// never read back into the scoring pipeline.
type MemberDocument struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	City     string  `json:"city,omitempty"`
	State    string  `json:"state,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
	Points   int     `json:"points"`
}

type MemberSearchService interface {
	IndexMember(user *model.User, points int) error
	DeleteMember(id string) error
}

type memberSearchService struct {
	client meilisearch.ServiceManager
}

func NewMemberSearchService(client meilisearch.ServiceManager) MemberSearchService {
	s := &memberSearchService{client: client}
	s.initIndex()
	return s
}

func (s *memberSearchService) initIndex() {
	filterable := []string{"role", "city", "state"}
	filterableInterface := make([]any, len(filterable))
	for i, v := range filterable {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(membersIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		logrus.WithError(err).Warn("failed to update members filterable attributes")
	}

	sortable := []string{"points", "name"}
	if _, err := s.client.Index(membersIndex).UpdateSortableAttributes(&sortable); err != nil {
		logrus.WithError(err).Warn("failed to update members sortable attributes")
	}
}

func (s *memberSearchService) IndexMember(user *model.User, points int) error {
	doc := MemberDocument{
		ID:     user.ID.String(),
		Name:   user.Name,
		Role:   user.Role,
		Points: points,
	}
	if p := user.Profile; p != nil {
		if p.City != nil {
			doc.City = *p.City
		}
		if p.State != nil {
			doc.State = *p.State
		}
		doc.PhotoURL = p.PhotoURL
	}

	_, err := s.client.Index(membersIndex).AddDocuments([]MemberDocument{doc}, strPtr("id"))
	return err
}

func strPtr(s string) *string {
	return &s
}

func (s *memberSearchService) DeleteMember(id string) error {
	_, err := s.client.Index(membersIndex).DeleteDocument(id)
	return err
}
