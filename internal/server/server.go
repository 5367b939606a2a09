package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cricklet/premove/internal/geometry"
	. "github.com/cricklet/premove/internal/helpers"
	"github.com/cricklet/premove/internal/premove"
	"github.com/cricklet/premove/internal/variant"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type UpdateToWeb struct {
	FenString string   `json:"fenString"`
	Variant   string   `json:"variant"`
	Selection string   `json:"selection"`
	Premoves  []string `json:"premoves"`
	Error     string   `json:"error,omitempty"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.Variant, ", ", u.Selection, ", ", u.Premoves)
}

type MessageFromWeb struct {
	NewFen    *string `json:"newFen"`
	Variant   *string `json:"variant"`
	Chess960  *bool   `json:"chess960"`
	CanCastle *bool   `json:"canCastle"`
	Selection *string `json:"selection"`
}

func (u MessageFromWeb) String() string {
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.Variant != nil {
		return fmt.Sprint("MessageFromWeb Variant: ", *u.Variant)
	}
	if u.Chess960 != nil {
		return fmt.Sprint("MessageFromWeb Chess960: ", *u.Chess960)
	}
	if u.CanCastle != nil {
		return fmt.Sprint("MessageFromWeb CanCastle: ", *u.CanCastle)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	return "MessageFromWeb unknown"
}

type LogForwarding struct {
	writeCallback func(message string)
}

func (l *LogForwarding) Println(v ...any) {
	l.writeCallback(fmt.Sprintln(v...))
}
func (l *LogForwarding) Printf(format string, v ...any) {
	l.writeCallback(fmt.Sprintf(format, v...))
}
func (l *LogForwarding) Print(v ...any) {
	l.writeCallback(fmt.Sprint(v...))
}

// session is the state behind one websocket connection.
type session struct {
	logger  Logger
	runner  premove.Runner
	options premove.RunnerOptions
}

func newSession(logger Logger, runnerLogger Logger) *session {
	s := &session{
		logger:  logger,
		options: premove.DefaultRunnerOptions,
	}
	s.runner = premove.NewRunner(
		premove.WithOptions(s.options),
		premove.WithLogger(runnerLogger))
	return s
}

// reconfigure keeps the current position when only the flags change.
func (s *session) reconfigure(options premove.RunnerOptions, fen string) Error {
	s.options = options
	s.runner.SetOptions(options)
	return s.runner.SetupPosition(fen)
}

func (s *session) handle(message MessageFromWeb) UpdateToWeb {
	s.logger.Println("received", message)

	var update UpdateToWeb
	var err Error

	if message.NewFen != nil {
		err = s.runner.SetupPosition(*message.NewFen)
	} else if message.Variant != nil {
		options := s.options
		options.Variant, err = variant.VariantFromString(*message.Variant)
		if IsNil(err) {
			options.Geometry = Empty[geometry.Geometry]()
			err = s.reconfigure(options, "startpos")
		}
	} else if message.Chess960 != nil {
		options := s.options
		options.Chess960 = *message.Chess960
		err = s.reconfigure(options, s.runner.StartFen)
	} else if message.CanCastle != nil {
		options := s.options
		options.CanCastle = *message.CanCastle
		err = s.reconfigure(options, s.runner.StartFen)
	} else if message.Selection != nil && *message.Selection != "" {
		update.Selection = *message.Selection
		update.Premoves, err = s.runner.MovesForSelection(*message.Selection)
	}

	if !IsNil(err) {
		s.logger.Println("handle:", err)
		update.Error = err.Error()
	}
	if update.Premoves == nil {
		update.Premoves = []string{}
	}
	update.FenString = s.runner.FenString()
	update.Variant = s.options.Variant.String()
	return update
}

var upgrader = websocket.Upgrader{}

func websocketHandler(logger Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if !IsNil(err) {
			logger.Println("upgrade:", err)
			return
		}
		defer c.Close()

		var log = func(message string) {
			logger.Print("logging: ", message)
			bytes, err := json.Marshal([]string{message})
			if !IsNil(err) {
				logger.Println("logging: json marshal:", err)
				return
			}
			err = c.WriteMessage(websocket.TextMessage, bytes)
			if !IsNil(err) {
				logger.Println("logging: websocket:", err)
			}
		}

		s := newSession(
			&LogForwarding{
				writeCallback: func(message string) {
					logger.Print("server: ", message)
				},
			},
			&LogForwarding{
				writeCallback: func(message string) {
					log(fmt.Sprintf("premove: %v", message))
				},
			})
		err = s.runner.SetupPosition("startpos")
		if !IsNil(err) {
			logger.Println("setup:", err)
			return
		}

		for {
			_, bytes, err := c.ReadMessage()
			if !IsNil(err) {
				logger.Printf("Error: %v\n", err)
				break
			}

			var message MessageFromWeb
			err = json.Unmarshal(bytes, &message)
			if !IsNil(err) {
				logger.Println("handleMessageFromWeb: json unmarshal:", err)
				continue
			}

			update := s.handle(message)
			s.logger.Println("sending", update)
			err = c.WriteJSON(update)
			if !IsNil(err) {
				logger.Println("websocket:", err)
				break
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// premoveHandler answers /api/premove?variant=..&fen=..&square=..
func premoveHandler(logger Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		options := premove.DefaultRunnerOptions
		if name := query.Get("variant"); name != "" {
			v, err := variant.VariantFromString(name)
			if !IsNil(err) {
				writeJSON(w, http.StatusBadRequest, UpdateToWeb{Error: err.Error()})
				return
			}
			options.Variant = v
		}
		if value := query.Get("chess960"); value != "" {
			options.Chess960, _ = strconv.ParseBool(value)
		}
		if value := query.Get("canCastle"); value != "" {
			options.CanCastle, _ = strconv.ParseBool(value)
		}

		runner := premove.NewRunner(premove.WithOptions(options))
		err := runner.SetupPosition(query.Get("fen"))
		if !IsNil(err) {
			writeJSON(w, http.StatusBadRequest, UpdateToWeb{Variant: options.Variant.String(), Error: err.Error()})
			return
		}

		square := query.Get("square")
		moves, err := runner.MovesForSelection(square)
		if !IsNil(err) {
			logger.Println("premove:", err)
			writeJSON(w, http.StatusBadRequest, UpdateToWeb{
				FenString: runner.FenString(),
				Variant:   options.Variant.String(),
				Selection: square,
				Error:     err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, UpdateToWeb{
			FenString: runner.FenString(),
			Variant:   options.Variant.String(),
			Selection: square,
			Premoves:  moves,
		})
	}
}

type VariantInfo struct {
	Name           string `json:"name"`
	Geometry       string `json:"geometry"`
	StartPlacement string `json:"startPlacement"`
}

func variantInfo(v variant.Variant) VariantInfo {
	return VariantInfo{
		Name:           v.String(),
		Geometry:       v.Geometry().String(),
		StartPlacement: v.StartPlacement(),
	}
}

func variantsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MapSlice(variant.AllVariants, variantInfo))
}

func variantHandler(w http.ResponseWriter, r *http.Request) {
	v, err := variant.VariantFromString(mux.Vars(r)["variant"])
	if !IsNil(err) {
		writeJSON(w, http.StatusNotFound, UpdateToWeb{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, variantInfo(v))
}

func NewRouter(logger Logger) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws", websocketHandler(logger))
	router.HandleFunc("/api/premove", premoveHandler(logger)).Methods(http.MethodGet)
	router.HandleFunc("/api/variants", variantsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/variants/{variant}", variantHandler).Methods(http.MethodGet)
	return router
}
