package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"

	"portfolio/internal/models"
)

func TestAdmin_RejectsWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	seeded, err := env.projects.Add(models.Project{Title: "Seeded"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	before, err := os.ReadFile(env.projectsPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	requests := []struct {
		method string
		url    string
		body   string
	}{
		{http.MethodGet, "/api/admin/projects", ""},
		{http.MethodPost, "/api/admin/projects", `{"title":"Sneaky"}`},
		{http.MethodPut, fmt.Sprintf("/api/admin/projects/%d", seeded.ID), `{"title":"Sneaky"}`},
		{http.MethodDelete, fmt.Sprintf("/api/admin/projects/%d", seeded.ID), ""},
		{http.MethodGet, "/api/admin/messages", ""},
		{http.MethodGet, "/api/admin/stats", ""},
	}
	for _, tokens := range [][]string{{""}, {"wrong-token"}} {
		for _, r := range requests {
			rec := env.do(t, r.method, r.url, r.body, tokens[0])
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("%s %s with token %q: expected 401, got %d", r.method, r.url, tokens[0], rec.Code)
			}
		}
	}

	after, err := os.ReadFile(env.projectsPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(before) != string(after) {
		t.Error("rejected requests must not mutate the store")
	}
}

func TestAdminProjects_CreateThenPublicFetch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/admin/projects",
		`{"title":"Portfolio Site","description":"A personal site","category":"web","technologies":["Go","React"],"featured":true}`,
		testAdminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data models.Project `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.ID != 1 {
		t.Errorf("expected id 1, got %d", created.Data.ID)
	}
	if created.Data.CompletedDate == "" {
		t.Error("completedDate must be assigned at creation")
	}

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.Data.ID), "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("fetch: expected 200, got %d", rec.Code)
	}
	var fetched struct {
		Data models.Project `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !equalProjects(fetched.Data, created.Data) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", fetched.Data, created.Data)
	}
}

// equalProjects compares without relying on slice comparability.
func equalProjects(a, b models.Project) bool {
	if a.ID != b.ID || a.Title != b.Title || a.Description != b.Description ||
		a.Category != b.Category || a.Featured != b.Featured || a.CompletedDate != b.CompletedDate {
		return false
	}
	if len(a.Technologies) != len(b.Technologies) {
		return false
	}
	for i := range a.Technologies {
		if a.Technologies[i] != b.Technologies[i] {
			return false
		}
	}
	return true
}

func TestAdminProjects_Update(t *testing.T) {
	env := newTestEnv(t)

	seeded, err := env.projects.Add(models.Project{Title: "Old", Description: "Keep me"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := env.do(t, http.MethodPut, fmt.Sprintf("/api/admin/projects/%d", seeded.ID),
		`{"title":"New","id":999}`, testAdminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data models.Project `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Title != "New" || resp.Data.Description != "Keep me" || resp.Data.ID != seeded.ID {
		t.Errorf("unexpected update result: %+v", resp.Data)
	}
}

func TestAdminProjects_UpdateMissing(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPut, "/api/admin/projects/42", `{"title":"x"}`, testAdminToken)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAdminProjects_DeleteMissingLeavesStoreUnchanged(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.projects.Add(models.Project{Title: "Survivor"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before, _ := os.ReadFile(env.projectsPath)

	rec := env.do(t, http.MethodDelete, "/api/admin/projects/999", "", testAdminToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	after, _ := os.ReadFile(env.projectsPath)
	if string(before) != string(after) {
		t.Error("stored collection must be byte-for-byte unchanged")
	}
}

func TestAdminMessages_ListAndMarkRead(t *testing.T) {
	env := newTestEnv(t)

	stored, err := env.messages.Append(models.Message{
		Type: models.MessageTypeContact, Name: "Jo", Email: "jo@example.com",
		Message: "Hello there, this is a message.",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/admin/messages", "", testAdminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list struct {
		Count *int             `json:"count"`
		Data  []models.Message `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Count == nil || *list.Count != 1 || len(list.Data) != 1 {
		t.Errorf("unexpected list: count=%v, %d messages", list.Count, len(list.Data))
	}

	rec = env.do(t, http.MethodPatch, fmt.Sprintf("/api/admin/messages/%d/read", stored.ID), "", testAdminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark read: expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	all, _ := env.messages.All()
	if !all[0].Read {
		t.Error("read flag not persisted")
	}
}

func TestAdminMessages_Delete(t *testing.T) {
	env := newTestEnv(t)

	stored, err := env.messages.Append(models.Message{
		Type: models.MessageTypeContact, Name: "Jo", Email: "jo@example.com",
		Message: "Hello there, this is a message.",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/messages/%d", stored.ID), "", testAdminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if all, _ := env.messages.All(); len(all) != 0 {
		t.Errorf("message not deleted: %+v", all)
	}

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/messages/%d", stored.ID), "", testAdminToken)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.projects.Add(models.Project{Title: "P1"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	first, err := env.messages.Append(models.Message{
		Type: models.MessageTypeContact, Name: "A", Email: "a@b.c", Message: "first message body here",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := env.messages.Append(models.Message{
		Type: models.MessageTypeHire, Name: "B", Email: "b@c.d", Message: "second message body here",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := env.messages.MarkRead(first.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/admin/stats", "", testAdminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data struct {
			TotalProjects  int `json:"totalProjects"`
			TotalMessages  int `json:"totalMessages"`
			TodayMessages  int `json:"todayMessages"`
			WeekMessages   int `json:"weekMessages"`
			UnreadMessages int `json:"unreadMessages"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.TotalProjects != 1 || resp.Data.TotalMessages != 2 {
		t.Errorf("totals: %+v", resp.Data)
	}
	if resp.Data.TodayMessages != 2 || resp.Data.WeekMessages != 2 {
		t.Errorf("recency counters: %+v", resp.Data)
	}
	if resp.Data.UnreadMessages != 1 {
		t.Errorf("unread: %d", resp.Data.UnreadMessages)
	}
}

func TestPublicProjects_List(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.projects.Add(models.Project{Title: "P1"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/projects", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Success bool             `json:"success"`
		Count   *int             `json:"count"`
		Data    []models.Project `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Count == nil || *resp.Count != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestPublicProjects_GetMissing(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/projects/42", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
