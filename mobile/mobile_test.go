package mobile

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestStartServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
	ln.Close()

	StartServer("", port)

	url := "http://127.0.0.1:" + port + "/api/new_game"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Post(url, "application/json", strings.NewReader("{}"))
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("post new_game: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("new_game status = %d", resp.StatusCode)
	}
}
