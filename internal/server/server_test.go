package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/cricklet/premove/internal/helpers"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, url string, result any) int {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(result))
	return resp.StatusCode
}

func TestPremoveEndpoint(t *testing.T) {
	s := httptest.NewServer(NewRouter(&SilentLogger))
	defer s.Close()

	var update UpdateToWeb
	status := get(t, s.URL+"/api/premove?square=g1", &update)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "chess", update.Variant)
	assert.Equal(t, []string{"e2", "f3", "h3"}, update.Premoves)

	update = UpdateToWeb{}
	status = get(t, s.URL+"/api/premove?variant=janggi&square=e2&fen=4k4/9/9/9/9/9/9/9/4K4/9", &update)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, update.Premoves, 8)

	update = UpdateToWeb{}
	status = get(t, s.URL+"/api/premove?square=e4", &update)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, update.Error, "no piece at source")

	update = UpdateToWeb{}
	status = get(t, s.URL+"/api/premove?variant=checkers&square=e4", &update)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestVariantEndpoints(t *testing.T) {
	s := httptest.NewServer(NewRouter(&SilentLogger))
	defer s.Close()

	var all []VariantInfo
	assert.Equal(t, http.StatusOK, get(t, s.URL+"/api/variants", &all))
	assert.Len(t, all, 33)

	var info VariantInfo
	assert.Equal(t, http.StatusOK, get(t, s.URL+"/api/variants/xiangqi", &info))
	assert.Equal(t, "9x10", info.Geometry)

	var update UpdateToWeb
	assert.Equal(t, http.StatusNotFound, get(t, s.URL+"/api/variants/checkers", &update))
}

// readUpdate skips forwarded log lines, which arrive as json arrays.
func readUpdate(t *testing.T, c *websocket.Conn) UpdateToWeb {
	for {
		_, bytes, err := c.ReadMessage()
		require.NoError(t, err)
		if strings.HasPrefix(string(bytes), "[") {
			continue
		}
		var update UpdateToWeb
		require.NoError(t, json.Unmarshal(bytes, &update))
		return update
	}
}

func send(t *testing.T, c *websocket.Conn, message string) {
	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte(message)))
}

func TestWebsocketSession(t *testing.T) {
	s := httptest.NewServer(NewRouter(&SilentLogger))
	defer s.Close()

	c, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(s.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer c.Close()

	send(t, c, `{"selection": "e1"}`)
	update := readUpdate(t, c)
	assert.Equal(t, "chess", update.Variant)
	assert.Equal(t, "e1", update.Selection)
	assert.Equal(t, []string{"a1", "c1", "d1", "d2", "e2", "f1", "f2", "g1", "h1"}, update.Premoves)

	send(t, c, `{"canCastle": false}`)
	readUpdate(t, c)
	send(t, c, `{"selection": "e1"}`)
	update = readUpdate(t, c)
	assert.Equal(t, []string{"d1", "d2", "e2", "f1", "f2"}, update.Premoves)

	send(t, c, `{"variant": "xiangqi"}`)
	update = readUpdate(t, c)
	assert.Equal(t, "xiangqi", update.Variant)
	assert.Equal(t, "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR", update.FenString)

	send(t, c, `{"selection": "e10"}`)
	update = readUpdate(t, c)
	assert.Equal(t, []string{"d10", "e9", "f10"}, update.Premoves)

	send(t, c, `{"newFen": "not a fen"}`)
	update = readUpdate(t, c)
	assert.NotEmpty(t, update.Error)
}
