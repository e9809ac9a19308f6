package controller_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sh5080/inventory-go/pkg/db"
	route "github.com/sh5080/inventory-go/pkg/routes"
	service "github.com/sh5080/inventory-go/pkg/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	route.SetupRoutes(app, service.NewServiceContainer(gdb))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func listCount(t *testing.T, app *fiber.App) int {
	t.Helper()

	resp := doJSON(t, app, "GET", "/inventories", "")
	if resp.StatusCode != 200 {
		t.Fatalf("list status=%d", resp.StatusCode)
	}
	var body struct {
		Count int `json:"count"`
	}
	decodeBody(t, resp, &body)
	return body.Count
}

func TestRootBanner(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/", "")
	if resp.StatusCode != 200 {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	if body.Message != "This is an inventory service" {
		t.Fatalf("message=%q", body.Message)
	}
}

func TestCreateThenList(t *testing.T) {
	app := newTestApp(t)
	before := listCount(t, app)

	resp := doJSON(t, app, "POST", "/inventories", `{"hostname": "h1"}`)
	if resp.StatusCode != 201 {
		t.Fatalf("create status=%d", resp.StatusCode)
	}
	var created struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &created)
	if created.Message != "inventory h1 has been created successfully." {
		t.Fatalf("message=%q", created.Message)
	}

	resp = doJSON(t, app, "GET", "/inventories", "")
	var list struct {
		Count       int `json:"count"`
		Inventories []struct {
			Hostname string `json:"hostname"`
		} `json:"inventories"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &list)

	if list.Count != before+1 {
		t.Fatalf("count=%d want %d", list.Count, before+1)
	}
	if list.Message != "success" {
		t.Fatalf("message=%q", list.Message)
	}
	found := false
	for _, inv := range list.Inventories {
		if inv.Hostname == "h1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("created hostname missing from list: %+v", list.Inventories)
	}
}

func TestCreateNotJSON(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/inventories", strings.NewReader("hostname=h1"))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status=%d want 400", resp.StatusCode)
	}
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	if body.Error != "The request payload is not in JSON format" {
		t.Fatalf("error=%q", body.Error)
	}
}

func TestCreateMissingHostname(t *testing.T) {
	app := newTestApp(t)
	before := listCount(t, app)

	resp := doJSON(t, app, "POST", "/inventories", `{"environment": "prod"}`)
	if resp.StatusCode != 400 {
		t.Fatalf("status=%d want 400", resp.StatusCode)
	}

	if after := listCount(t, app); after != before {
		t.Fatalf("rejected create changed count: %d -> %d", before, after)
	}
}

func TestReadAfterCreate(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/inventories", `{"hostname": "web01", "ipaddress": "10.0.0.5"}`)

	resp := doJSON(t, app, "GET", "/inventories/1", "")
	if resp.StatusCode != 200 {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var body struct {
		Message   string `json:"message"`
		Inventory struct {
			Hostname        string `json:"hostname"`
			Environment     string `json:"environment"`
			IPAddress       string `json:"ipaddress"`
			ApplicationName string `json:"applicationname"`
		} `json:"inventory"`
	}
	decodeBody(t, resp, &body)

	if body.Message != "success" {
		t.Fatalf("message=%q", body.Message)
	}
	if body.Inventory.Hostname != "web01" || body.Inventory.IPAddress != "10.0.0.5" {
		t.Fatalf("inventory=%+v", body.Inventory)
	}
	if body.Inventory.Environment != "" || body.Inventory.ApplicationName != "" {
		t.Fatalf("unset fields not empty: %+v", body.Inventory)
	}
}

func TestGetUnknownID(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/inventories/999999", "/inventories/abc", "/inventories/0"} {
		resp := doJSON(t, app, "GET", path, "")
		if resp.StatusCode != 404 {
			t.Fatalf("GET %s status=%d want 404", path, resp.StatusCode)
		}
	}
}

func TestReplaceOverwritesEveryField(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/inventories", `{"hostname": "h1", "environment": "dev"}`)

	payload := `{"hostname": "h2", "environment": "", "ipaddress": "172.16.0.4", "applicationname": "erp"}`
	resp := doJSON(t, app, "PUT", "/inventories/1", payload)
	if resp.StatusCode != 200 {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var updated struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &updated)
	if updated.Message != "inventory h2 successfully updated" {
		t.Fatalf("message=%q", updated.Message)
	}

	resp = doJSON(t, app, "GET", "/inventories/1", "")
	var body struct {
		Inventory struct {
			Hostname        string `json:"hostname"`
			Environment     string `json:"environment"`
			IPAddress       string `json:"ipaddress"`
			ApplicationName string `json:"applicationname"`
		} `json:"inventory"`
	}
	decodeBody(t, resp, &body)
	if body.Inventory.Hostname != "h2" || body.Inventory.Environment != "" ||
		body.Inventory.IPAddress != "172.16.0.4" || body.Inventory.ApplicationName != "erp" {
		t.Fatalf("inventory=%+v", body.Inventory)
	}
}

func TestReplaceMissingKey(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/inventories", `{"hostname": "h1"}`)

	resp := doJSON(t, app, "PUT", "/inventories/1", `{"hostname": "h2"}`)
	if resp.StatusCode != 400 {
		t.Fatalf("status=%d want 400", resp.StatusCode)
	}
}

func TestReplaceUnknownID(t *testing.T) {
	app := newTestApp(t)

	payload := `{"hostname": "h1", "environment": "", "ipaddress": "", "applicationname": ""}`
	resp := doJSON(t, app, "PUT", "/inventories/999999", payload)
	if resp.StatusCode != 404 {
		t.Fatalf("status=%d want 404", resp.StatusCode)
	}
}

func TestDeleteThenGet(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/inventories", `{"hostname": "h1"}`)

	resp := doJSON(t, app, "DELETE", "/inventories/1", "")
	if resp.StatusCode != 200 {
		t.Fatalf("delete status=%d", resp.StatusCode)
	}
	var deleted struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &deleted)
	if deleted.Message != "inventory h1 successfully deleted." {
		t.Fatalf("message=%q", deleted.Message)
	}

	resp = doJSON(t, app, "GET", "/inventories/1", "")
	if resp.StatusCode != 404 {
		t.Fatalf("get after delete status=%d want 404", resp.StatusCode)
	}

	resp = doJSON(t, app, "DELETE", "/inventories/1", "")
	if resp.StatusCode != 404 {
		t.Fatalf("second delete status=%d want 404", resp.StatusCode)
	}
}

func TestIDsNotReusedOverHTTP(t *testing.T) {
	app := newTestApp(t)

	for i := 1; i <= 2; i++ {
		doJSON(t, app, "POST", "/inventories", fmt.Sprintf(`{"hostname": "h%d"}`, i))
	}
	doJSON(t, app, "DELETE", "/inventories/2", "")
	doJSON(t, app, "POST", "/inventories", `{"hostname": "h3"}`)

	// The replacement record must get a fresh id, not the deleted one's.
	resp := doJSON(t, app, "GET", "/inventories/3", "")
	if resp.StatusCode != 200 {
		t.Fatalf("status=%d want 200", resp.StatusCode)
	}
	var body struct {
		Inventory struct {
			Hostname string `json:"hostname"`
		} `json:"inventory"`
	}
	decodeBody(t, resp, &body)
	if body.Inventory.Hostname != "h3" {
		t.Fatalf("hostname=%q want h3", body.Inventory.Hostname)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/health", "")
	if resp.StatusCode != 200 {
		t.Fatalf("status=%d", resp.StatusCode)
	}
	var body struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &body)
	if body.Status != "ok" {
		t.Fatalf("status=%q", body.Status)
	}
}
