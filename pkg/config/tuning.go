package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"github.com/decker502/solidsorter/pkg/types"
	"gopkg.in/yaml.v3"
)

// defaultTuningYAML 随程序发布的默认调参文件
//
//go:embed tuning.yaml
var defaultTuningYAML []byte

// TuningConfig 游戏模拟调参配置
//
// 包含模拟核心依赖的全部常量。所有值都有默认值（DefaultTuning），
// YAML 文件中缺省的字段保留默认值。
//
// 坐标系：x 沿传送带方向（出料口在左，玩家在右），y 竖直向上，z 为传送带所在的横向位置。
type TuningConfig struct {
	// LivesStart 开局生命数
	LivesStart int `yaml:"livesStart"`

	// FlashDuration 闪屏反馈持续时间（秒，墙钟时间）
	FlashDuration float64 `yaml:"flashDuration"`

	// Shapes 生成池中的形状列表
	Shapes []types.ShapeType `yaml:"shapes"`

	Lanes   LaneConfig    `yaml:"lanes"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Catch   CatchConfig   `yaml:"catch"`
	Target  TargetConfig  `yaml:"target"`
	Player  PlayerConfig  `yaml:"player"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// LaneConfig 传送带（行）配置
type LaneConfig struct {
	// Z 每条传送带的 z 坐标（固定 3 条）
	Z []float64 `yaml:"z"`

	// SpeedMultipliers 每条传送带相对基础速度的倍率
	SpeedMultipliers []float64 `yaml:"speedMultipliers"`

	// Capacity 每条传送带上未下落物体的上限
	Capacity int `yaml:"capacity"`

	// ClearDistance 最近物体离开出料口多远后才允许再次生成
	ClearDistance float64 `yaml:"clearDistance"`
}

// PhysicsConfig 物体运动配置
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`        // 重力加速度（单位/秒²，负值向下）
	InitialSpeed   float64 `yaml:"initialSpeed"`   // 初始传送带速度（单位/秒）
	SpeedIncrement float64 `yaml:"speedIncrement"` // 每次生成后基础速度增量
	ChuteX         float64 `yaml:"chuteX"`         // 出料口 x
	ChuteY         float64 `yaml:"chuteY"`         // 出料口高度
	LandingY       float64 `yaml:"landingY"`       // 落到传送带上的高度
	SpawnDriftX    float64 `yaml:"spawnDriftX"`    // 出料阶段的水平漂移速度
	BeltStartX     float64 `yaml:"beltStartX"`     // 传送带起点 x（仅用于渲染）
	BeltEndX       float64 `yaml:"beltEndX"`       // 传送带末端 x，越过即开始下落
	BeltY          float64 `yaml:"beltY"`          // 传送带表面高度（仅用于渲染）
	LaunchVY       float64 `yaml:"launchVY"`       // 离开传送带时的竖直初速度
}

// SpawnConfig 生成调度配置
type SpawnConfig struct {
	// StaggerDelay 外侧传送带在开局后多少秒（活动时间）才开始生成
	StaggerDelay float64 `yaml:"staggerDelay"`

	// SpawnChance 非空传送带每个 tick 的生成概率
	SpawnChance float64 `yaml:"spawnChance"`
}

// CatchConfig 接取判定配置
type CatchConfig struct {
	PlayerX    float64 `yaml:"playerX"`    // 接取箱 x
	WindowMinY float64 `yaml:"windowMinY"` // 接取窗口下沿（开区间）
	WindowMaxY float64 `yaml:"windowMaxY"` // 接取窗口上沿（开区间）
	RadiusX    float64 `yaml:"radiusX"`    // x 方向判定半径
	RadiusZ    float64 `yaml:"radiusZ"`    // z 方向判定半径
	MissY      float64 `yaml:"missY"`      // 低于此高度判定为漏接
}

// TargetConfig 目标轮换配置
type TargetConfig struct {
	// RotationCount 接到多少个目标后轮换
	RotationCount int `yaml:"rotationCount"`

	// GuaranteeWindow 目标形状至少每隔多少秒生成一次
	GuaranteeWindow float64 `yaml:"guaranteeWindow"`

	// ChangeWindow 目标刚切换时使用的（更短的）保证窗口
	ChangeWindow float64 `yaml:"changeWindow"`
}

// PlayerConfig 玩家接取箱配置
type PlayerConfig struct {
	StartLane    int     `yaml:"startLane"`    // 开局所在传送带
	Smoothing    float64 `yaml:"smoothing"`    // 视觉位置每 tick 的插值系数
	BinY         float64 `yaml:"binY"`         // 接取箱视觉高度
	BobAmplitude float64 `yaml:"bobAmplitude"` // 视觉上下浮动幅度
	BobFrequency float64 `yaml:"bobFrequency"` // 视觉上下浮动角频率
}

// ScoringConfig 计分配置
type ScoringConfig struct {
	CatchScore   int `yaml:"catchScore"`   // 接到目标的得分
	WrongCatch   int `yaml:"wrongCatch"`   // 接错形状扣除的生命
	MissedTarget int `yaml:"missedTarget"` // 漏接目标扣除的生命
}

// DefaultTuning 返回内置默认调参
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		LivesStart:    5,
		FlashDuration: 0.2,
		Shapes:        types.DefaultShapePool(),
		Lanes: LaneConfig{
			Z:                []float64{-10, 0, 10},
			SpeedMultipliers: []float64{0.9, 1.0, 1.1},
			Capacity:         3,
			ClearDistance:    7,
		},
		Physics: PhysicsConfig{
			Gravity:        -35,
			InitialSpeed:   4.5,
			SpeedIncrement: 0.005,
			ChuteX:         -16,
			ChuteY:         10,
			LandingY:       5,
			SpawnDriftX:    2,
			BeltStartX:     -15,
			BeltEndX:       5,
			BeltY:          4,
			LaunchVY:       6,
		},
		Spawn: SpawnConfig{
			StaggerDelay: 3.0,
			SpawnChance:  0.02,
		},
		Catch: CatchConfig{
			PlayerX:    9,
			WindowMinY: 0,
			WindowMaxY: 4,
			RadiusX:    2,
			RadiusZ:    2.5,
			MissY:      -2,
		},
		Target: TargetConfig{
			RotationCount:   3,
			GuaranteeWindow: 5.0,
			ChangeWindow:    4.8,
		},
		Player: PlayerConfig{
			StartLane:    1,
			Smoothing:    0.25,
			BinY:         2.5,
			BobAmplitude: 0.1,
			BobFrequency: 2,
		},
		Scoring: ScoringConfig{
			CatchScore:   100,
			WrongCatch:   1,
			MissedTarget: 1,
		},
	}
}

// EmbeddedTuning 解析随程序嵌入的默认调参文件
func EmbeddedTuning() (*TuningConfig, error) {
	return ParseTuning(defaultTuningYAML)
}

// LoadTuning 从 YAML 文件加载调参配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 在默认值基础上覆盖后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadTuning(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning 解析 YAML 调参数据
// 未出现的字段保留 DefaultTuning 中的值
func ParseTuning(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *TuningConfig) Validate() error {
	if c.LivesStart < 1 {
		return fmt.Errorf("livesStart must be >= 1, got %d", c.LivesStart)
	}
	if c.FlashDuration <= 0 {
		return fmt.Errorf("flashDuration must be > 0, got %.3f", c.FlashDuration)
	}

	// 验证形状池
	if len(c.Shapes) == 0 {
		return fmt.Errorf("shapes cannot be empty")
	}
	seen := make(map[types.ShapeType]bool, len(c.Shapes))
	for _, s := range c.Shapes {
		if !s.IsValid() {
			return fmt.Errorf("shapes contains invalid shape %d", int(s))
		}
		if seen[s] {
			return fmt.Errorf("shapes contains duplicate %s", s)
		}
		seen[s] = true
	}

	// 验证传送带
	if len(c.Lanes.Z) != LaneCount {
		return fmt.Errorf("lanes.z must list exactly %d lanes, got %d", LaneCount, len(c.Lanes.Z))
	}
	if len(c.Lanes.SpeedMultipliers) != len(c.Lanes.Z) {
		return fmt.Errorf("lanes.speedMultipliers must have %d entries, got %d",
			len(c.Lanes.Z), len(c.Lanes.SpeedMultipliers))
	}
	for i, m := range c.Lanes.SpeedMultipliers {
		if m <= 0 {
			return fmt.Errorf("lanes.speedMultipliers[%d] must be > 0, got %.3f", i, m)
		}
	}
	for i := 1; i < len(c.Lanes.Z); i++ {
		if c.Lanes.Z[i] <= c.Lanes.Z[i-1] {
			return fmt.Errorf("lanes.z must be strictly increasing, got %v", c.Lanes.Z)
		}
	}
	if c.Lanes.Capacity < 1 {
		return fmt.Errorf("lanes.capacity must be >= 1, got %d", c.Lanes.Capacity)
	}
	if c.Lanes.ClearDistance < 0 {
		return fmt.Errorf("lanes.clearDistance must be >= 0, got %.2f", c.Lanes.ClearDistance)
	}

	// 验证物理参数
	if c.Physics.Gravity >= 0 {
		return fmt.Errorf("physics.gravity must be negative, got %.2f", c.Physics.Gravity)
	}
	if c.Physics.InitialSpeed <= 0 {
		return fmt.Errorf("physics.initialSpeed must be > 0, got %.2f", c.Physics.InitialSpeed)
	}
	if c.Physics.SpeedIncrement < 0 {
		return fmt.Errorf("physics.speedIncrement must be >= 0, got %.4f", c.Physics.SpeedIncrement)
	}
	if c.Physics.LandingY >= c.Physics.ChuteY {
		return fmt.Errorf("physics.landingY(%.2f) must be below chuteY(%.2f)",
			c.Physics.LandingY, c.Physics.ChuteY)
	}
	if c.Physics.BeltEndX <= c.Physics.ChuteX {
		return fmt.Errorf("physics.beltEndX(%.2f) must be right of chuteX(%.2f)",
			c.Physics.BeltEndX, c.Physics.ChuteX)
	}

	// 验证接取判定
	if c.Catch.WindowMinY >= c.Catch.WindowMaxY {
		return fmt.Errorf("catch window invalid: min(%.2f) >= max(%.2f)",
			c.Catch.WindowMinY, c.Catch.WindowMaxY)
	}
	if c.Catch.RadiusX <= 0 || c.Catch.RadiusZ <= 0 {
		return fmt.Errorf("catch radii must be > 0, got x=%.2f z=%.2f", c.Catch.RadiusX, c.Catch.RadiusZ)
	}
	if c.Catch.MissY >= c.Catch.WindowMinY {
		return fmt.Errorf("catch.missY(%.2f) must be below windowMinY(%.2f)",
			c.Catch.MissY, c.Catch.WindowMinY)
	}

	// 验证目标轮换
	if c.Target.RotationCount < 1 {
		return fmt.Errorf("target.rotationCount must be >= 1, got %d", c.Target.RotationCount)
	}
	if c.Target.GuaranteeWindow <= 0 {
		return fmt.Errorf("target.guaranteeWindow must be > 0, got %.2f", c.Target.GuaranteeWindow)
	}
	if c.Target.ChangeWindow <= 0 || c.Target.ChangeWindow > c.Target.GuaranteeWindow {
		return fmt.Errorf("target.changeWindow must be in (0, %.2f], got %.2f",
			c.Target.GuaranteeWindow, c.Target.ChangeWindow)
	}

	// 验证玩家
	if c.Player.StartLane < 0 || c.Player.StartLane >= len(c.Lanes.Z) {
		return fmt.Errorf("player.startLane must be in [0, %d), got %d", len(c.Lanes.Z), c.Player.StartLane)
	}
	if c.Player.Smoothing <= 0 || c.Player.Smoothing > 1 {
		return fmt.Errorf("player.smoothing must be in (0, 1], got %.3f", c.Player.Smoothing)
	}

	// 验证生成与计分
	if c.Spawn.SpawnChance < 0 || c.Spawn.SpawnChance > 1 {
		return fmt.Errorf("spawn.spawnChance must be in [0, 1], got %.3f", c.Spawn.SpawnChance)
	}
	if c.Spawn.StaggerDelay < 0 {
		return fmt.Errorf("spawn.staggerDelay must be >= 0, got %.2f", c.Spawn.StaggerDelay)
	}
	if c.Scoring.CatchScore < 0 || c.Scoring.WrongCatch < 0 || c.Scoring.MissedTarget < 0 {
		return fmt.Errorf("scoring values must be >= 0, got %+v", c.Scoring)
	}

	return nil
}

// LaneClearTime 返回最慢的传送带上，新生成的物体离开出料口 ClearDistance 所需的活动时间（秒）
//
// 出料阶段从 ChuteY 自由落体到 LandingY，同时以 SpawnDriftX 漂移；
// 落到传送带后以 InitialSpeed × 最小倍率前进（基础速度只增不减，这是最慢情况）。
// 目标逾期后，至多等待这么久就会有一条传送带满足间距条件。
func (c *TuningConfig) LaneClearTime() float64 {
	fall := math.Sqrt(2 * (c.Physics.ChuteY - c.Physics.LandingY) / -c.Physics.Gravity)
	drift := c.Physics.SpawnDriftX * fall
	if drift >= c.Lanes.ClearDistance {
		if c.Physics.SpawnDriftX <= 0 {
			return 0
		}
		return c.Lanes.ClearDistance / c.Physics.SpawnDriftX
	}

	slowest := c.Lanes.SpeedMultipliers[0]
	for _, m := range c.Lanes.SpeedMultipliers[1:] {
		slowest = math.Min(slowest, m)
	}
	return fall + (c.Lanes.ClearDistance-drift)/(c.Physics.InitialSpeed*slowest)
}

// CenterLane 返回中间传送带的索引（开局不受错峰限制）
func (c *TuningConfig) CenterLane() int {
	return len(c.Lanes.Z) / 2
}

// LaneZ 返回指定传送带的 z 坐标
func (c *TuningConfig) LaneZ(lane int) float64 {
	return c.Lanes.Z[lane]
}

// Clone 返回配置的深拷贝
func (c *TuningConfig) Clone() *TuningConfig {
	clone := *c
	clone.Shapes = append([]types.ShapeType(nil), c.Shapes...)
	clone.Lanes.Z = append([]float64(nil), c.Lanes.Z...)
	clone.Lanes.SpeedMultipliers = append([]float64(nil), c.Lanes.SpeedMultipliers...)
	return &clone
}
