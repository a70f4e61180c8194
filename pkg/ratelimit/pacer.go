// Package ratelimit implementa o espaçamento mínimo entre requisições
// sequenciais a uma mesma plataforma. O Pacer é compartilhado por chave
// (plataforma + credencial), de modo que execuções concorrentes de usuários
// diferentes contra a mesma conta não excedam juntas o limite do fornecedor.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	mu   sync.Mutex
	next time.Time
}

type Pacer struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewPacer() *Pacer {
	return &Pacer{
		entries: make(map[string]*entry),
	}
}

func (p *Pacer) entryFor(key string) *entry {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.entries[key]
	if !ok {
		e = &entry{}
		p.entries[key] = e
	}
	return e
}

// Wait bloqueia até que o intervalo mínimo desde a última aquisição da
// chave tenha passado, ou até o contexto ser cancelado.
func (p *Pacer) Wait(ctx context.Context, key string, gap time.Duration) error {
	e := p.entryFor(key)

	e.mu.Lock()
	now := time.Now()
	wait := e.next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	e.next = now.Add(wait + gap)
	e.mu.Unlock()

	if wait == 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
