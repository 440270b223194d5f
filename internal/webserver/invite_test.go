package webserver_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
)

func TestInvites(t *testing.T) {
	smtpMock := &infrastructure.SMTPMock{}
	clock := &fakeClock{now: t0}
	app := bootstrapApp(t, smtpMock, clock)
	ownerCookie := register(app, "owner", "owner@example.com", t)
	editorCookie := register(app, "editor", "editor@example.com", t)

	boardID := createBoard(app, ownerCookie, "Sprint retro", t)
	invitesURL := fmt.Sprintf("/boards/%d/invites", boardID)

	t.Run("Invitation is mailed to the invitee", func(t *testing.T) {
		smtpMock.Wg.Add(1)
		token := invite(app, ownerCookie, boardID, "Editor@Example.com", "edit", t)
		smtpMock.Wg.Wait()

		if !smtpMock.CalledSend() {
			t.Fatal("Expected an invitation email to be sent")
		}
		address, body := smtpMock.LastMessage()
		if address != "editor@example.com" {
			t.Errorf("Expected email to be sent to editor@example.com, got '%s'", address)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		link, _ := doc.Find("a").Attr("href")
		if !strings.HasSuffix(link, fmt.Sprintf("/boards/%d?invite=%s", boardID, token)) {
			t.Errorf("Unexpected invitation link '%s'", link)
		}
		if !strings.Contains(doc.Text(), "Sprint retro") {
			t.Error("Expected the email to mention the board title")
		}
	})

	t.Run("The same email cannot be invited twice", func(t *testing.T) {
		response, err := postJSONRequest(url.Values{"email": {"editor@example.com"}, "type": {"view"}}, ownerCookie, app, invitesURL, t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusConflict, t)
	})

	t.Run("Owners cannot invite themselves", func(t *testing.T) {
		response, err := postJSONRequest(url.Values{"email": {"owner@example.com"}, "type": {"edit"}}, ownerCookie, app, invitesURL, t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusBadRequest, t)
	})

	t.Run("Invalid invites are rejected", func(t *testing.T) {
		for _, data := range []url.Values{
			{"email": {"not an email"}, "type": {"edit"}},
			{"email": {"someone@example.com"}, "type": {"admin"}},
		} {
			response, err := postJSONRequest(data, ownerCookie, app, invitesURL, t)
			if response == nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			mustReturnStatus(response, http.StatusBadRequest, t)
		}
	})

	t.Run("Only the owner manages invites", func(t *testing.T) {
		response, err := postJSONRequest(url.Values{"email": {"friend@example.com"}, "type": {"edit"}}, editorCookie, app, invitesURL, t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)

		response, err = getJSONRequest(editorCookie, app, invitesURL, t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)
	})

	t.Run("Owner lists the invites", func(t *testing.T) {
		response, err := getJSONRequest(ownerCookie, app, invitesURL, t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusOK, t)

		var list struct {
			Invites []struct {
				Email string `json:"email"`
				Type  string `json:"type"`
			} `json:"invites"`
		}
		decode(response, &list, t)
		if len(list.Invites) != 1 || list.Invites[0].Email != "editor@example.com" || list.Invites[0].Type != "edit" {
			t.Errorf("Unexpected invites %+v", list.Invites)
		}
	})

	t.Run("Downgrading an invite takes edit access away", func(t *testing.T) {
		// The owner holds the lease of a new board until it lapses
		clock.Set(t0.Add(time.Second))
		mustReturnStatus(addComponent(app, editorCookie, boardID, "", "text", "Editing", t), http.StatusCreated, t)

		response, err := postJSONRequest(url.Values{"email": {"editor@example.com"}, "type": {"view"}}, ownerCookie, app, invitesURL+"/type", t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusOK, t)

		mustReturnStatus(addComponent(app, editorCookie, boardID, "", "text", "Editing again", t), http.StatusUnauthorized, t)
		mustReturnStatus(addComponent(app, editorCookie, boardID, "", "chat", "Can I still talk?", t), http.StatusCreated, t)
	})

	t.Run("Revoking an invite takes access away", func(t *testing.T) {
		response, err := postJSONRequest(url.Values{"email": {"editor@example.com"}}, ownerCookie, app, invitesURL+"/delete", t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusNoContent, t)

		response, err = getRequest(editorCookie, app, fmt.Sprintf("/boards/%d", boardID), t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusUnauthorized, t)

		response, err = postJSONRequest(url.Values{"email": {"editor@example.com"}}, ownerCookie, app, invitesURL+"/delete", t)
		if response == nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		mustReturnStatus(response, http.StatusNotFound, t)
	})
}

func TestInvitesWithoutEmailService(t *testing.T) {
	app := bootstrapApp(t, &infrastructure.NoEmail{}, &fakeClock{now: t0})
	ownerCookie := register(app, "owner", "owner@example.com", t)
	boardID := createBoard(app, ownerCookie, "Sprint retro", t)

	if token := invite(app, ownerCookie, boardID, "guest@example.com", "view", t); token == "" {
		t.Error("Expected an invitation link even without email service")
	}
}
