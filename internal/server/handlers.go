package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/philipparndt/gofloor/internal/annotate"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/midline"
	"github.com/philipparndt/gofloor/pkg/preview"
	"github.com/philipparndt/gofloor/pkg/svgplan"
	"github.com/philipparndt/gofloor/pkg/view"
)

const fitMargin = 20

type pointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p pointRequest) point() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

type keyRequest struct {
	Key string `json:"key"`
}

type commandRequest struct {
	Command string `json:"command"`
}

type midlinesRequest struct {
	All bool `json:"all"`
}

type viewRequest struct {
	Op string  `json:"op"` // zoom-in, zoom-out, pan, fit
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type markerInfo struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	ID       int     `json:"id"`
	Selected bool    `json:"selected"`
}

type sessionInfo struct {
	ID        string       `json:"id"`
	Document  string       `json:"document"`
	Mode      string       `json:"mode"`
	Spaces    int          `json:"spaces"`
	Selection []bool       `json:"selection"`
	Elevators []markerInfo `json:"elevators"`
	Stairs    []markerInfo `json:"stairs"`
	NextID    fiber.Map    `json:"nextId"`
	Scale     float64      `json:"scale"`
	Offset    [2]float64   `json:"offset"`
	Midlines  int          `json:"midlines"`
}

func describe(id string, s *annotate.Session) sessionInfo {
	markers := func(kind annotate.MarkerKind) []markerInfo {
		out := make([]markerInfo, 0, len(s.Markers(kind)))
		for _, m := range s.Markers(kind) {
			out = append(out, markerInfo{X: m.Position.X, Y: m.Position.Y, ID: m.ID, Selected: m.Selected})
		}
		return out
	}
	v := s.View()
	return sessionInfo{
		ID:        id,
		Document:  s.Document(),
		Mode:      s.Mode().String(),
		Spaces:    len(s.Spaces()),
		Selection: s.Selection(),
		Elevators: markers(annotate.Elevator),
		Stairs:    markers(annotate.Stairs),
		NextID: fiber.Map{
			"elevator": s.Cursor(annotate.Elevator),
			"stairs":   s.Cursor(annotate.Stairs),
		},
		Scale:    v.Scale,
		Offset:   [2]float64{v.Offset.X, v.Offset.Y},
		Midlines: len(s.Midlines()),
	}
}

// fail maps errors to status codes
func fail(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, annotate.ErrIndexOutOfRange), errors.Is(err, errBadRequest):
		status = fiber.StatusBadRequest
	default:
		log.Printf("[SERVER] %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

var errBadRequest = errors.New("bad request")

func decode(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return fmt.Errorf("%w: body required", errBadRequest)
	}
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", errBadRequest, err)
	}
	return nil
}

// createSession parses the SVG request body. The document query parameter
// names the settings key and defaults to the plan name.
func (s *Server) createSession(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return fail(c, fmt.Errorf("%w: svg body required", errBadRequest))
	}

	plan, err := svgplan.Parse(bytes.NewReader(c.Body()), s.cfg.Box(), s.cfg.PlanOptions())
	if err != nil {
		return fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}

	document := c.Query("document", "upload.svg")
	plan.Name = document
	session := annotate.NewSession(plan, document, s.cfg, s.store, nil)
	if c.Query("load") == "true" {
		if err := session.LoadSettings(); err != nil {
			return fail(c, err)
		}
	}

	id := s.add(session)
	return c.Status(fiber.StatusCreated).JSON(describe(id, session))
}

func (s *Server) listSessions(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"sessions": s.IDs()})
}

func (s *Server) getSession(c fiber.Ctx) error {
	id := c.Params("id")
	var info sessionInfo
	err := s.with(id, func(session *annotate.Session) error {
		info = describe(id, session)
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(info)
}

func (s *Server) deleteSession(c fiber.Ctx) error {
	if err := s.remove(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) hover(c fiber.Ctx) error {
	var req pointRequest
	if err := decode(c, &req); err != nil {
		return fail(c, err)
	}
	var hovered int
	err := s.with(c.Params("id"), func(session *annotate.Session) error {
		hovered = session.Hover(req.point())
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"hovered": hovered})
}

func (s *Server) click(c fiber.Ctx) error {
	var req pointRequest
	if err := decode(c, &req); err != nil {
		return fail(c, err)
	}
	var res annotate.ClickResult
	err := s.with(c.Params("id"), func(session *annotate.Session) error {
		res = session.Click(req.point())
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(res)
}

func (s *Server) key(c fiber.Ctx) error {
	var req keyRequest
	if err := decode(c, &req); err != nil {
		return fail(c, err)
	}
	runes := []rune(req.Key)
	if len(runes) != 1 {
		return fail(c, fmt.Errorf("%w: key must be a single character", errBadRequest))
	}

	id := c.Params("id")
	var cmd annotate.Command
	var info sessionInfo
	err := s.with(id, func(session *annotate.Session) error {
		name, _ := s.cfg.Command(runes[0])
		if err := serverSafe(name); err != nil {
			return err
		}
		var err error
		cmd, err = session.HandleKey(runes[0])
		info = describe(id, session)
		return err
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"command": cmd.String(), "session": info})
}

func (s *Server) command(c fiber.Ctx) error {
	var req commandRequest
	if err := decode(c, &req); err != nil {
		return fail(c, err)
	}
	cmd, err := annotate.ParseCommand(req.Command)
	if err != nil {
		return fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
	}
	if err := serverSafe(req.Command); err != nil {
		return fail(c, err)
	}

	id := c.Params("id")
	var info sessionInfo
	err = s.with(id, func(session *annotate.Session) error {
		err := session.Execute(cmd)
		info = describe(id, session)
		return err
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"command": cmd.String(), "session": info})
}

// serverSafe rejects commands that write to the server's file system
func serverSafe(name string) error {
	switch name {
	case annotate.CmdExport.String(), annotate.CmdExportDebug.String():
		return fmt.Errorf("%w: use GET export.svg instead of %s", errBadRequest, name)
	}
	return nil
}

func (s *Server) midlines(c fiber.Ctx) error {
	var req midlinesRequest
	if len(c.Body()) > 0 {
		if err := decode(c, &req); err != nil {
			return fail(c, err)
		}
	}

	var stats midline.Stats
	var membership []bool
	err := s.with(c.Params("id"), func(session *annotate.Session) error {
		var net *midline.Network
		if req.All {
			net = session.ComputeAllMidlines()
			membership = net.Membership()
		} else {
			net = session.ComputeSelectedMidlines()
		}
		stats = net.Stats()
		return nil
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"segments":        stats.Segments,
		"centerlines":     stats.Centerlines,
		"connectors":      stats.Connectors,
		"components":      stats.Components,
		"primarySize":     stats.PrimarySize,
		"primarySegments": stats.PrimarySegments,
		"length":          stats.Length,
		"primaryLength":   stats.PrimaryLength,
		"membership":      membership,
	})
}

func (s *Server) updateView(c fiber.Ctx) error {
	var req viewRequest
	if err := decode(c, &req); err != nil {
		return fail(c, err)
	}

	var v view.State
	err := s.with(c.Params("id"), func(session *annotate.Session) error {
		p := geometry.Point{X: req.X, Y: req.Y}
		switch req.Op {
		case "zoom-in":
			session.Zoom(p, true)
		case "zoom-out":
			session.Zoom(p, false)
		case "pan":
			session.SetView(session.View().Pan(p))
		case "fit":
			session.SetView(view.Fit(session.Plan().Bounds(), s.cfg.Width, s.cfg.Height, fitMargin))
		default:
			return fmt.Errorf("%w: unknown view op %q", errBadRequest, req.Op)
		}
		v = session.View()
		return nil
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"scale": v.Scale, "offset": [2]float64{v.Offset.X, v.Offset.Y}})
}

func (s *Server) exportSVG(c fiber.Ctx) error {
	debug := c.Query("debug") == "true"
	var buf bytes.Buffer
	err := s.with(c.Params("id"), func(session *annotate.Session) error {
		return session.Export(&buf, debug)
	})
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(buf.Bytes())
}

func (s *Server) exportPNG(c fiber.Ctx) error {
	var buf bytes.Buffer
	err := s.with(c.Params("id"), func(session *annotate.Session) error {
		img := preview.Render(session.Scene(), int(s.cfg.Width), int(s.cfg.Height))
		return preview.WritePNG(&buf, img)
	})
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}
