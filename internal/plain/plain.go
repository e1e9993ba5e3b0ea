// Package plain runs the drill over line-oriented text streams, for pipes and
// terminals where the full-screen interface is unavailable.
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/verte-zerg/tentwenty/internal/imageview"
	"github.com/verte-zerg/tentwenty/internal/model"
	"github.com/verte-zerg/tentwenty/internal/quiz"
)

const labelWidth = 30

// Runner drives a controller from an input stream and writes to an output.
type Runner struct {
	ctrl   *quiz.Controller
	images *imageview.Renderer
	policy imageview.Policy
	log    *zap.Logger

	in  *bufio.Scanner
	out io.Writer
}

// New returns a runner. images may be nil to skip previews.
func New(ctrl *quiz.Controller, images *imageview.Renderer, policy imageview.Policy, log *zap.Logger, in io.Reader, out io.Writer) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		ctrl:   ctrl,
		images: images,
		policy: policy,
		log:    log,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run loops until the input ends, the user quits or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	view := r.ctrl.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			next model.PageView
			quit bool
			err  error
		)
		if view.Start {
			next, quit, err = r.startPage(view)
		} else {
			next, quit, err = r.quizPage(view)
		}
		if err != nil || quit {
			return err
		}
		view = next
	}
}

func (r *Runner) startPage(view model.PageView) (model.PageView, bool, error) {
	r.printImage(view.Image, imageview.PolicyIgnore)
	r.printf("%s\n\n%s\n\n", view.Title, view.Intro)
	for {
		r.printf("Press enter to start, q to quit: ")
		line, ok := r.readLine()
		if !ok || strings.EqualFold(line, "q") {
			return model.PageView{}, true, r.inputErr()
		}
		next, entered, err := r.advance()
		if err != nil {
			return model.PageView{}, true, err
		}
		if entered {
			return next, false, nil
		}
	}
}

func (r *Runner) quizPage(view model.PageView) (model.PageView, bool, error) {
	r.printf("\n== Page %d ==\n%s\n", view.PageID, view.PromptText)
	for {
		submitted := make(map[string]string, len(view.Fields))
		for _, f := range view.Fields {
			r.printf("  %-*s ", labelWidth, f.Label)
			line, ok := r.readLine()
			if !ok {
				return model.PageView{}, true, r.inputErr()
			}
			submitted[f.Label] = line
		}
		eval := r.ctrl.Check(submitted)
		r.printEvaluation(eval)

		for {
			r.printf("[r]etry, [n] %s, [q]uit: ", strings.ToLower(view.AdvanceLabel))
			line, ok := r.readLine()
			if !ok {
				return model.PageView{}, true, r.inputErr()
			}
			switch strings.ToLower(line) {
			case "q":
				return model.PageView{}, true, nil
			case "n":
				next, entered, err := r.advance()
				if err != nil {
					return model.PageView{}, true, err
				}
				if entered {
					return next, false, nil
				}
				continue
			case "r", "":
			default:
				continue
			}
			break
		}
	}
}

// advance applies the image policy before entering the next page. A false
// entered result means the page was refused and the state is unchanged.
func (r *Runner) advance() (model.PageView, bool, error) {
	target, err := r.ctrl.NextPageID()
	if err != nil {
		return model.PageView{}, false, err
	}
	if target != model.StartPageID {
		page, err := r.ctrl.Catalog().Get(target)
		if err != nil {
			return model.PageView{}, false, err
		}
		if !r.printImage(page.Image, r.policy) {
			return model.PageView{}, false, nil
		}
	}
	view, err := r.ctrl.EnterPage(target)
	if err != nil {
		return model.PageView{}, false, err
	}
	return view, true, nil
}

// printImage prints the preview for ref and reports whether navigation may
// continue under policy.
func (r *Runner) printImage(ref string, policy imageview.Policy) bool {
	preview, proceed, loadErr := r.images.Load(ref, policy)
	if loadErr != nil {
		r.log.Warn("image load failed", zap.String("image", ref), zap.Error(loadErr))
		r.printf("Error loading image %s: %v\n", ref, loadErr)
		return proceed
	}
	if preview != "" {
		r.printf("%s\n", preview)
	}
	return proceed
}

func (r *Runner) printEvaluation(eval model.AnswerEvaluation) {
	for _, res := range eval.Results {
		r.printf("  %-*s %s\n", labelWidth, res.Label, res.Status)
	}
	r.printf("%s\n", eval.Summary())
}

func (r *Runner) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *Runner) inputErr() error {
	if err := r.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (r *Runner) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		// Best-effort output; a closed pipe ends the run on the next read.
		_ = err
	}
}
