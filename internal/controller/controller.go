// Package controller holds the presentation state of the roadmap screen and
// orchestrates the two generation flows: project ideas and chat.
//
// A Controller is not safe for concurrent use. All methods are called from
// one goroutine; dispatch may run elsewhere between a Begin and its Complete.
package controller

import (
	"context"
	"fmt"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/gemini"
	"github.com/gdgqassim/robo-roadmap/internal/roadmap"
)

// IdeaTicket identifies an in-flight idea request
type IdeaTicket struct {
	StageID int
	Request gemini.Request
}

// ChatTicket identifies an in-flight chat turn
type ChatTicket struct {
	// Turn is the transcript index of the user message that started it.
	Turn    int
	Request gemini.Request
}

// Controller owns the selected stage, the idea, the chat transcript and both phases
type Controller struct {
	catalog    *roadmap.Catalog
	dispatcher gemini.Dispatcher
	language   string

	selected int // stage ID, 0 when none

	idea      gemini.Result
	hasIdea   bool
	ideaPhase Phase
	ideaStage int // stage ID of the pending idea request

	transcript *internal.Transcript
	input      string
	chatPhase  Phase
}

// New creates a controller with nothing selected and a greeting in the transcript
func New(catalog *roadmap.Catalog, dispatcher gemini.Dispatcher, language string) *Controller {
	t := internal.NewTranscript()
	t.Append(internal.Message{Actor: internal.ActorAssistant, Content: Greeting()})
	return &Controller{
		catalog:    catalog,
		dispatcher: dispatcher,
		language:   language,
		transcript: t,
	}
}

// Catalog returns the stage catalog
func (c *Controller) Catalog() *roadmap.Catalog {
	return c.catalog
}

// Dispatcher returns the dispatcher used by the synchronous flows
func (c *Controller) Dispatcher() gemini.Dispatcher {
	return c.dispatcher
}

// Language returns the answer language used in prompts
func (c *Controller) Language() string {
	return c.language
}

// Selected returns the selected stage
func (c *Controller) Selected() (roadmap.Stage, bool) {
	if c.selected == 0 {
		return roadmap.Stage{}, false
	}
	return c.catalog.Get(c.selected)
}

// Select opens the stage with the given ID. Changing stage clears the idea.
func (c *Controller) Select(id int) error {
	if _, ok := c.catalog.Get(id); !ok {
		return fmt.Errorf("stage not found: %d", id)
	}
	if id == c.selected {
		return nil
	}
	c.selected = id
	c.clearIdea()
	internal.LogDebug("Selected stage %d", id)
	return nil
}

// Deselect closes the open stage and clears the idea
func (c *Controller) Deselect() {
	if c.selected == 0 {
		return
	}
	c.selected = 0
	c.clearIdea()
}

func (c *Controller) clearIdea() {
	c.idea = gemini.Result{}
	c.hasIdea = false
}

// Idea returns the stored idea result, if any
func (c *Controller) Idea() (gemini.Result, bool) {
	return c.idea, c.hasIdea
}

// IdeaPhase reports whether an idea request is in flight
func (c *Controller) IdeaPhase() Phase {
	return c.ideaPhase
}

// PendingIdea returns the stage ID of the in-flight idea request
func (c *Controller) PendingIdea() (int, bool) {
	if c.ideaPhase != Pending {
		return 0, false
	}
	return c.ideaStage, true
}

// BeginIdea starts an idea request for the selected stage. It returns false
// without side effects when nothing is selected or a request is already pending.
func (c *Controller) BeginIdea() (IdeaTicket, bool) {
	stage, ok := c.Selected()
	if !ok || c.ideaPhase == Pending {
		return IdeaTicket{}, false
	}
	c.ideaPhase = Pending
	c.ideaStage = stage.ID
	c.clearIdea()
	return IdeaTicket{
		StageID: stage.ID,
		Request: gemini.Request{Prompt: IdeaPrompt(stage.Title, c.language)},
	}, true
}

// CompleteIdea ends the idea request. The phase always returns to Idle; the
// result is kept only while the ticket's stage is still selected.
func (c *Controller) CompleteIdea(ticket IdeaTicket, res gemini.Result) {
	c.ideaPhase = Idle
	c.ideaStage = 0
	if ticket.StageID != c.selected {
		internal.LogDebug("Dropping idea for stage %d, stage %d is selected", ticket.StageID, c.selected)
		return
	}
	c.idea = res
	c.hasIdea = true
}

// GenerateIdea runs the whole idea flow synchronously
func (c *Controller) GenerateIdea(ctx context.Context) (gemini.Result, bool) {
	ticket, ok := c.BeginIdea()
	if !ok {
		return gemini.Result{}, false
	}
	res := c.dispatcher.Generate(ctx, ticket.Request)
	c.CompleteIdea(ticket, res)
	return res, true
}

// Input returns the pending chat input
func (c *Controller) Input() string {
	return c.input
}

// SetInput replaces the chat input
func (c *Controller) SetInput(s string) {
	c.input = s
}

// ChatPhase reports whether a chat turn is in flight
func (c *Controller) ChatPhase() Phase {
	return c.chatPhase
}

// InputEnabled reports whether the chat input accepts a new message
func (c *Controller) InputEnabled() bool {
	return c.chatPhase == Idle
}

// Messages returns a copy of the chat transcript
func (c *Controller) Messages() []internal.Message {
	return c.transcript.Messages()
}

// Transcript returns the underlying append-only transcript
func (c *Controller) Transcript() *internal.Transcript {
	return c.transcript
}

// BeginSend appends the input as a user message and starts a chat turn. It
// returns false without side effects for blank input or while a turn is pending.
func (c *Controller) BeginSend() (ChatTicket, bool) {
	if isBlank(c.input) || c.chatPhase == Pending {
		return ChatTicket{}, false
	}
	text := c.input
	c.transcript.Append(internal.Message{Actor: internal.ActorUser, Content: text})
	c.input = ""
	c.chatPhase = Pending
	return ChatTicket{
		Turn:    c.transcript.Len() - 1,
		Request: gemini.Request{Prompt: text, SystemInstruction: Persona(c.language)},
	}, true
}

// CompleteSend appends the assistant reply and returns the chat to Idle
func (c *Controller) CompleteSend(ticket ChatTicket, res gemini.Result) {
	msg := internal.Message{Actor: internal.ActorAssistant, Content: res.Display()}
	if res.Failed() {
		msg.Fault = res.Kind.String()
	}
	c.transcript.Append(msg)
	c.chatPhase = Idle
	internal.LogDebug("Chat turn %d finished: %s", ticket.Turn, res.Kind)
}

// Send runs the whole chat flow synchronously with the current input
func (c *Controller) Send(ctx context.Context) (gemini.Result, bool) {
	ticket, ok := c.BeginSend()
	if !ok {
		return gemini.Result{}, false
	}
	res := c.dispatcher.Generate(ctx, ticket.Request)
	c.CompleteSend(ticket, res)
	return res, true
}
