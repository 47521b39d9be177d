package game

import "math"

// Step advances the simulation by dt seconds. It does nothing outside play.
// Callers are expected to clamp dt to MaxStep; Advance does that.
func (s *Session) Step(dt float64) {
	if s.mode != ModePlay {
		return
	}

	s.tickTimers(dt)
	s.movePaddle(dt)
	if !s.moveBall(dt) {
		return
	}
	if !s.updatePerks(dt) {
		return
	}
	s.updateBullets(dt)
	s.compact()

	if countAlive(s.bricks) == 0 {
		s.finish(ModeWin)
	}
}

func (s *Session) tickTimers(dt float64) {
	s.speedGain += GlobalGain * dt
	s.ball.Speed += BallGrowth * dt

	if s.ball.Through {
		s.ball.ThroughTimer -= dt
		if s.ball.ThroughTimer <= 0 {
			s.ball.Through = false
		}
	}
	if s.ball.Fireball {
		s.ball.FireballTimer -= dt
		if s.ball.FireballTimer <= 0 {
			s.ball.Fireball = false
		}
	}
	if s.paddle.WidthTimer > 0 {
		s.paddle.WidthTimer -= dt
		if s.paddle.WidthTimer <= 0 {
			s.paddle.WidthTimer = 0
			s.paddle.W = PaddleWidth
		}
	}
	if s.paddle.Shooting {
		s.paddle.ShootingTimer -= dt
		if s.paddle.ShootingTimer <= 0 {
			s.paddle.Shooting = false
		}
	}
}

func (s *Session) movePaddle(dt float64) {
	vx := 0.0
	if s.leftHeld {
		vx -= s.paddle.Speed
	}
	if s.rightHeld {
		vx += s.paddle.Speed
	}
	s.paddle.Pos.X += vx * dt
	s.clampPaddle()
}

// moveBall integrates the ball and resolves wall, paddle and brick contacts.
// It returns false when the ball left through the bottom and the rest of the
// frame must be skipped.
func (s *Session) moveBall(dt float64) bool {
	b := &s.ball
	if b.Stuck {
		b.Pos = s.stuckBallPos()
		return true
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if b.Pos.X+b.Radius > s.width {
		b.Pos.X = s.width - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.Y+b.Radius > s.height {
		b.Pos.Y = s.height - b.Radius
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}

	if b.Pos.Y-b.Radius < 0 {
		s.LoseLife()
		return false
	}

	if c, ok := CircleVsBox(s.paddle.Box(), b.Pos, b.Radius); ok {
		b.Pos = b.Pos.Add(c.Normal.Scale(c.Penetration))
		b.Vel = paddleBounce(b.Pos.X, &s.paddle, b.Speed)
	}

	for i := range s.bricks {
		br := &s.bricks[i]
		if !br.Alive {
			continue
		}
		c, ok := CircleVsBox(br.Box(), b.Pos, b.Radius)
		if !ok {
			continue
		}
		s.damageBrick(br)
		if !b.passesThrough() {
			b.Pos = b.Pos.Add(c.Normal.Scale(c.Penetration))
			b.Vel = Reflect(b.Vel, c.Normal, b.Speed)
		}
	}
	return true
}

// damageBrick applies one hit: the brick's value is scored on every hit and
// a destroyed brick may drop a perk.
func (s *Session) damageBrick(br *Brick) {
	s.score += br.Score
	if br.hit() {
		s.maybeSpawnPerk(br)
	}
}

// updatePerks moves falling perks and collects those touching the paddle.
// It returns false when a collected perk ended the session.
func (s *Session) updatePerks(dt float64) bool {
	paddle := s.paddle.Box()
	for i := range s.perks {
		p := &s.perks[i]
		if !p.Alive {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		if p.Pos.Y < PerkDespawnY {
			p.Alive = false
			continue
		}
		if !p.Box().Overlaps(paddle) {
			continue
		}
		p.Alive = false
		s.applyPerk(p.Type)
		if s.lives <= 0 {
			return false
		}
		// A perk may have resized the paddle.
		paddle = s.paddle.Box()
	}
	return true
}

// updateBullets moves bullets upward. A bullet damages the first living brick
// containing its position and is spent.
func (s *Session) updateBullets(dt float64) {
	// Bricks destroyed here may append perks; bullets are never appended.
	for i := range s.bullets {
		bu := &s.bullets[i]
		if !bu.Alive {
			continue
		}
		bu.Pos = bu.Pos.Add(bu.Vel.Scale(dt))
		if bu.Pos.Y > s.height+BulletMargin {
			bu.Alive = false
			continue
		}
		for j := range s.bricks {
			br := &s.bricks[j]
			if !br.Alive || !br.Box().Contains(bu.Pos) {
				continue
			}
			bu.Alive = false
			s.damageBrick(br)
			break
		}
	}
}

// compact drops dead perks and bullets.
func (s *Session) compact() {
	s.perks = compactAlive(s.perks, func(p *Perk) bool { return p.Alive })
	s.bullets = compactAlive(s.bullets, func(b *Bullet) bool { return b.Alive })
}

func compactAlive[T any](items []T, alive func(*T) bool) []T {
	n := 0
	for i := range items {
		if alive(&items[i]) {
			items[n] = items[i]
			n++
		}
	}
	var zero T
	for i := n; i < len(items); i++ {
		items[i] = zero
	}
	return items[:n]
}

// Bricks returns the number of bricks still standing.
func (s *Session) Bricks() int {
	return countAlive(s.bricks)
}

