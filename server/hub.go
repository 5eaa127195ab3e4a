package server

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"sousvide/cook"
	"sousvide/history"
	"sousvide/model"
	"sousvide/store"
)

// Hub serves one websocket client: it decodes cook requests, runs the model
// and pushes replies back over the connection.
type Hub struct {
	conn *websocket.Conn
	st   *store.Store
	hist *history.Ring

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	done chan struct{}
}

func NewHub(st *store.Store, hist *history.Ring) *Hub {
	return &Hub{
		st:    st,
		hist:  hist,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			switch msg.Type {
			case "compute":
				h.reply <- h.compute(msg)
			case "curve":
				h.reply <- h.curve(msg)
			case "presets":
				h.reply <- h.presets()
			case "history":
				h.reply <- h.history()
			default:
				log.Warn("no such type: ", msg.Type)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.Error("write: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func errReply(err error) model.Msg {
	return model.Msg{Type: "error", Content: err.Error()}
}

func dataReply(msgType string, payload interface{}) model.Msg {
	content, err := json.Marshal(payload)
	if err != nil {
		log.Error("marshal ", msgType, ": ", err)
		return errReply(err)
	}
	return model.Msg{Type: msgType, Content: string(content)}
}

func decodeRequest(msg model.Msg) (model.CookRequest, cook.Input, error) {
	var req model.CookRequest
	if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
		return req, cook.Input{}, err
	}
	food, err := cook.ParseFood(req.Food)
	if err != nil {
		return req, cook.Input{}, err
	}
	in := cook.Input{
		Food:         food,
		Kind:         req.Kind,
		ThicknessMm:  req.ThicknessMm,
		BathTemp:     req.TempBath,
		StartTemp:    req.TempStart,
		CoreTemp:     req.TempCore,
		LogReduction: req.LogReduction,
	}
	if food != cook.Vegetable {
		shape, err := cook.ParseShape(req.Shape)
		if err != nil {
			return req, cook.Input{}, err
		}
		in.Shape = shape
	}
	return req, in, nil
}

func (h *Hub) compute(msg model.Msg) model.Msg {
	req, in, err := decodeRequest(msg)
	if err != nil {
		log.Warn("compute request rejected: ", err)
		return errReply(err)
	}
	result := model.CookResult{}
	times, err := cook.TotalTime(in)
	switch {
	case errors.Is(err, cook.ErrUnreachable):
		// all three result fields stay null
		unreachableTotal.Inc()
		log.WithFields(log.Fields{
			"tempBath": req.TempBath,
			"tempCore": req.TempCore,
		}).Info("target core temperature not reachable")
	case err != nil:
		log.Warn("compute request rejected: ", err)
		return errReply(err)
	default:
		heating, pasteurization, total := times.HeatingMin, times.PasteurizationMin, times.TotalMin
		result.HeatingMin = &heating
		result.PasteurizationMin = &pasteurization
		result.TotalMin = &total
	}
	computationsTotal.WithLabelValues(req.Food).Inc()

	rec := model.CookRecord{Request: req, Result: result, CreatedAt: time.Now()}
	h.hist.Add(rec)
	if h.st != nil {
		if err := h.st.SaveCook(rec); err != nil {
			log.Error("save cook: ", err)
		}
	}
	return dataReply("computed", result)
}

func (h *Hub) curve(msg model.Msg) model.Msg {
	req, in, err := decodeRequest(msg)
	if err != nil {
		log.Warn("curve request rejected: ", err)
		return errReply(err)
	}
	duration := req.DurationMin
	if duration <= 0 {
		times, err := cook.TotalTime(in)
		if err != nil {
			log.Warn("curve request rejected: ", err)
			return errReply(err)
		}
		duration = times.TotalMin
	}
	points := cook.TemperatureCurve(in, duration, Cfg.CurveSamples)
	out := make([]model.CurvePoint, len(points))
	for i, p := range points {
		out[i] = model.CurvePoint{TimeMin: p.TimeMin, TempC: p.TempC}
	}
	return dataReply("curveData", out)
}

func (h *Hub) presets() model.Msg {
	data := model.PresetData{Doneness: make(map[string][]model.PresetItem)}
	for _, food := range []cook.FoodCategory{cook.Beef, cook.Pork, cook.Poultry, cook.Fish} {
		items := make([]model.PresetItem, 0, len(cook.DonenessPresets(food)))
		for _, p := range cook.DonenessPresets(food) {
			items = append(items, model.PresetItem{Label: p.Label, TempC: p.TempC})
		}
		data.Doneness[food.String()] = items
	}
	kinds := make([]string, 0, len(cook.VegetableData))
	for kind := range cook.VegetableData {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		v := cook.VegetableData[kind]
		data.Vegetables = append(data.Vegetables, model.VegetableItem{
			Kind: kind, Label: v.Label, TimeMin: v.TimeMin, TempC: v.TempC,
		})
	}
	return dataReply("presetData", data)
}

func (h *Hub) history() model.Msg {
	return dataReply("historyData", h.hist.Items())
}
