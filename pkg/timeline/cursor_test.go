package timeline

import (
	"math"
	"testing"
)

// TestTimeCursor_RepeatBounds 测试 repeat 模式下任意推进后值保持在 [0, duration)
func TestTimeCursor_RepeatBounds(t *testing.T) {
	var c TimeCursor
	c.Reset(2.0, LoopRepeat)

	steps := []float64{0, 0.016, 0.5, 1.999, 2.0, 5.0, 100.0, 0.001}
	for _, dt := range steps {
		v := c.Advance(dt)
		if v < 0 || v >= 2.0 {
			t.Fatalf("Advance(%v) 后值 %v 越界 [0, 2)", dt, v)
		}
	}
}

// TestTimeCursor_RepeatWrapValue 测试 repeat 模式的回绕算术
func TestTimeCursor_RepeatWrapValue(t *testing.T) {
	var c TimeCursor
	c.Reset(2.0, LoopRepeat)

	c.Advance(1.5)
	v := c.Advance(1.0) // 2.5 -> 0.5
	if math.Abs(v-0.5) > 0.001 {
		t.Errorf("期望回绕到 0.5，得到 %v", v)
	}

	v = c.Advance(6.0) // 6.5 -> 0.5
	if math.Abs(v-0.5) > 0.001 {
		t.Errorf("大步长回绕期望 0.5，得到 %v", v)
	}
}

// TestTimeCursor_PingPongBounds 测试 pingpong 模式下值始终在 [0, duration]
func TestTimeCursor_PingPongBounds(t *testing.T) {
	var c TimeCursor
	c.Reset(2.0, LoopPingPong)

	steps := []float64{0.7, 0.7, 0.7, 0.7, 3.3, 0, 10.0, 0.016, 1.9, 2.0, 2.1}
	for _, dt := range steps {
		v := c.Advance(dt)
		if v < 0 || v > 2.0 {
			t.Fatalf("Advance(%v) 后值 %v 越界 [0, 2]", dt, v)
		}
	}
}

// TestTimeCursor_PingPongReflect 测试 pingpong 模式在两端反射
func TestTimeCursor_PingPongReflect(t *testing.T) {
	var c TimeCursor
	c.Reset(2.0, LoopPingPong)

	v := c.Advance(1.5)
	if math.Abs(v-1.5) > 0.001 {
		t.Fatalf("正向段期望 1.5，得到 %v", v)
	}

	v = c.Advance(1.0) // 相位 2.5 -> 反射为 1.5
	if math.Abs(v-1.5) > 0.001 {
		t.Errorf("末端反射期望 1.5，得到 %v", v)
	}

	v = c.Advance(1.4) // 相位 3.9 -> 反射为 0.1
	if math.Abs(v-0.1) > 0.001 {
		t.Errorf("返程期望 0.1，得到 %v", v)
	}

	v = c.Advance(0.2) // 相位 4.1 回绕 -> 0.1，再次正向
	if math.Abs(v-0.1) > 0.001 {
		t.Errorf("起点反射期望 0.1，得到 %v", v)
	}
}

// TestTimeCursor_NoneHoldsAtEnd 测试 none 模式到达末尾后保持
func TestTimeCursor_NoneHoldsAtEnd(t *testing.T) {
	var c TimeCursor
	c.Reset(2.0, LoopNone)

	v := c.Advance(5.0)
	if v != 2.0 {
		t.Errorf("期望停在 2.0，得到 %v", v)
	}

	v = c.Advance(1.0)
	if v != 2.0 {
		t.Errorf("末尾保持失败，得到 %v", v)
	}

	v = c.Advance(0)
	if v != 2.0 {
		t.Errorf("dt=0 不应改变值，得到 %v", v)
	}
}

// TestTimeCursor_Seek 测试各模式下的直接定位
func TestTimeCursor_Seek(t *testing.T) {
	tests := []struct {
		name     string
		mode     LoopMode
		seek     float64
		expected float64
	}{
		{"none 域内", LoopNone, 1.0, 1.0},
		{"none 超界截断", LoopNone, 3.0, 2.0},
		{"none 负值截断", LoopNone, -1.0, 0.0},
		{"repeat 域内", LoopRepeat, 1.5, 1.5},
		{"repeat 回绕", LoopRepeat, 2.5, 0.5},
		{"pingpong 域内", LoopPingPong, 1.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c TimeCursor
			c.Reset(2.0, tt.mode)
			c.Seek(tt.seek)
			if math.Abs(c.Value()-tt.expected) > 0.001 {
				t.Errorf("Seek(%v) 后值 %v, 期望 %v", tt.seek, c.Value(), tt.expected)
			}
		})
	}
}

// TestParseLoopMode 测试循环模式字符串解析
func TestParseLoopMode(t *testing.T) {
	tests := []struct {
		s        string
		expected LoopMode
		wantErr  bool
	}{
		{"none", LoopNone, false},
		{"repeat", LoopRepeat, false},
		{"pingpong", LoopPingPong, false},
		{"bounce", LoopNone, true},
	}

	for _, tt := range tests {
		m, err := ParseLoopMode(tt.s)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLoopMode(%q) 期望错误", tt.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLoopMode(%q) 失败: %v", tt.s, err)
		}
		if m != tt.expected {
			t.Errorf("ParseLoopMode(%q) = %v, 期望 %v", tt.s, m, tt.expected)
		}
	}
}
