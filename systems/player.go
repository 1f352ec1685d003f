package systems

import (
	"math"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
	"github.com/yohamta/donburi"
)

func UpdatePlayer(w donburi.World, dt float64) {
	tags.Player.Each(w, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(w, playerEntry, inputOf(w), dt)
	})
}

func updateSinglePlayer(w donburi.World, playerEntry *donburi.Entry, input *components.InputData, dt float64) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	anim := components.Animator.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	player.WasGrounded = player.Grounded
	player.Grounded = checkGround(w, obj)
	anim.SetBool(cfg.ParamGrounded, player.Grounded)

	if !player.ControllerEnabled {
		player.MoveAxis, player.LookAxis = 0, 0
		components.Emitter.Get(playerEntry).Emitting = false
		anim.SetFloat(cfg.ParamHorizontalSpeed, 0)
		anim.SetFloat(cfg.ParamYVelocity, physics.SpeedY)
		return
	}

	handleMovementInput(input, player, physics)
	handleJumpInput(w, input, player, physics, dt)
	handleLookInput(input, player)

	if player.Grounded && !player.WasGrounded {
		feet := components.Vector{X: obj.X + obj.W/2, Y: obj.Y + obj.H}
		SpawnBurst(w, feet.X, feet.Y, cfg.Particles.ImpactCount/2, cfg.Particles.ImpactLifetime, cfg.Stone)
		PlaySFX(w, cfg.SoundLand)
	}
	components.Emitter.Get(playerEntry).Emitting = player.Grounded && player.MoveAxis != 0

	anim.SetFloat(cfg.ParamHorizontalSpeed, math.Abs(player.MoveAxis))
	anim.SetFloat(cfg.ParamYVelocity, physics.SpeedY)
}

// checkGround overlaps a small circle under the feet against solids.
func checkGround(w donburi.World, obj *components.ObjectData) bool {
	r := cfg.Player.GroundCheckRadius
	feet := components.Vector{X: obj.X + obj.W/2, Y: obj.Y + obj.H + r/2}
	return len(OverlapCircle(w, feet, r, tags.ResolvSolid)) > 0
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	axis := input.MoveAxis
	if math.Abs(axis) <= cfg.Player.MoveDeadzone {
		axis = 0
	}
	axis = math.Max(-1, math.Min(1, axis))
	player.MoveAxis = axis

	// Knockback owns horizontal speed while stunned
	if physics.StunTimer > 0 {
		return
	}
	physics.SpeedX = axis * cfg.Player.MoveSpeed
	if axis > 0 {
		player.Direction.X = cfg.DirectionRight
	} else if axis < 0 {
		player.Direction.X = cfg.DirectionLeft
	}
}

// handleJumpInput implements coyote time, the jump buffer and short hops.
func handleJumpInput(w donburi.World, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, dt float64) {
	if player.Grounded {
		player.CoyoteTimer = cfg.Player.HangTime
	} else if player.CoyoteTimer > 0 {
		player.CoyoteTimer -= dt
	}

	if input.JustPressed(cfg.ActionJump) {
		player.JumpBuffer = cfg.Player.JumpBufferTime
	} else if player.JumpBuffer > 0 {
		player.JumpBuffer -= dt
	}

	if player.JumpBuffer > 0 && player.CoyoteTimer > 0 {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = nil
		player.JumpBuffer = 0
		player.CoyoteTimer = 0
		player.Grounded = false
		PlaySFX(w, cfg.SoundJump)
	}

	if input.JustReleased(cfg.ActionJump) && physics.SpeedY < 0 {
		physics.SpeedY *= cfg.Player.ShortHopMultiplier
	}
}

func handleLookInput(input *components.InputData, player *components.PlayerData) {
	look := input.LookAxis
	if input.Pressed(cfg.ActionLookUp) {
		look = -1
	} else if input.Pressed(cfg.ActionLookDown) {
		look = 1
	}
	switch {
	case look < -cfg.Player.MoveDeadzone:
		player.LookAxis = -1
	case look > cfg.Player.MoveDeadzone:
		player.LookAxis = 1
	default:
		player.LookAxis = 0
	}
}
