// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the tunable thresholds the engine's subsystems
// read (§6.5) from an optional settings file, falling back to the
// bit-exact defaults baked in below when no file is present or a field
// is left unset.
package config

// Constants holds every tunable threshold named in spec §6.5. Every
// field has a calibration-matching default; a missing or partial
// settings file is never an error (§7 "Unknown name... silent ignore").
type Constants struct {
	GamepadAxisMovementThreshold     float32 `toml:"gamepad_axis_movement_threshold" yaml:"gamepad_axis_movement_threshold"`
	LeftStickDeadzone                float32 `toml:"left_stick_deadzone" yaml:"left_stick_deadzone"`
	RightStickDeadzone               float32 `toml:"right_stick_deadzone" yaml:"right_stick_deadzone"`
	LeftStickDPadActivationThreshold float32 `toml:"left_stick_dpad_activation_threshold" yaml:"left_stick_dpad_activation_threshold"`
	LeftStickDPadReleaseThreshold    float32 `toml:"left_stick_dpad_release_threshold" yaml:"left_stick_dpad_release_threshold"`
	TriggerActivationThreshold       float32 `toml:"trigger_activation_threshold" yaml:"trigger_activation_threshold"`
	TriggerReleaseThreshold          float32 `toml:"trigger_release_threshold" yaml:"trigger_release_threshold"`
	MouseMovementThreshold           float32 `toml:"mouse_movement_threshold" yaml:"mouse_movement_threshold"`
	ScrollSpeed                      float32 `toml:"scroll_speed" yaml:"scroll_speed"`
	DefaultClickTimeout              float32 `toml:"default_click_timeout" yaml:"default_click_timeout"`
	OverlayMenuFrameLockDuration     float32 `toml:"overlay_menu_frame_lock_duration" yaml:"overlay_menu_frame_lock_duration"`
	ButtonRepeatInitialDelay         float32 `toml:"button_repeat_initial_delay" yaml:"button_repeat_initial_delay"`
	ButtonRepeatSubsequentDelay      float32 `toml:"button_repeat_subsequent_delay" yaml:"button_repeat_subsequent_delay"`
	ButtonHoldCoyoteTime             float32 `toml:"button_hold_coyote_time" yaml:"button_hold_coyote_time"`
	SliderHoldActivationTime        float32 `toml:"slider_hold_activation_time" yaml:"slider_hold_activation_time"`
	KeyHoldResetDuration             float32 `toml:"key_hold_reset_duration" yaml:"key_hold_reset_duration"`
	FocusVectorThreshold             float32 `toml:"focus_vector_threshold" yaml:"focus_vector_threshold"`
	FocusVibrationIntensity          float32 `toml:"focus_vibration_intensity" yaml:"focus_vibration_intensity"`
	ActionVibrationIntensity         float32 `toml:"action_vibration_intensity" yaml:"action_vibration_intensity"`
	SliderDiscreteStep               float32 `toml:"slider_discrete_step" yaml:"slider_discrete_step"`
	SliderContinuousMultiplier       float32 `toml:"slider_continuous_multiplier" yaml:"slider_continuous_multiplier"`
	InputBindingDefaultThreshold     float32 `toml:"input_binding_default_threshold" yaml:"input_binding_default_threshold"`
	CursorMinimumMovementDistance    float32 `toml:"cursor_minimum_movement_distance" yaml:"cursor_minimum_movement_distance"`
	TouchInputMinimumHoverTime       float32 `toml:"touch_input_minimum_hover_time" yaml:"touch_input_minimum_hover_time"`
}

// Defaults returns the bit-exact §6.5 constant table as Go literals.
func Defaults() Constants {
	return Constants{
		GamepadAxisMovementThreshold:     0.2,
		LeftStickDeadzone:                0.1,
		RightStickDeadzone:               0.2,
		LeftStickDPadActivationThreshold: 0.5,
		LeftStickDPadReleaseThreshold:    0.3,
		TriggerActivationThreshold:       0.5,
		TriggerReleaseThreshold:          0.3,
		MouseMovementThreshold:           1.0,
		ScrollSpeed:                      10.0,
		DefaultClickTimeout:              0.05,
		OverlayMenuFrameLockDuration:     0.1,
		ButtonRepeatInitialDelay:         0.3,
		ButtonRepeatSubsequentDelay:      0.1,
		ButtonHoldCoyoteTime:             0.12,
		SliderHoldActivationTime:         0.2,
		KeyHoldResetDuration:             0.7,
		FocusVectorThreshold:             0.1,
		FocusVibrationIntensity:          0.7,
		ActionVibrationIntensity:         1.0,
		SliderDiscreteStep:               0.01,
		SliderContinuousMultiplier:       0.6,
		InputBindingDefaultThreshold:     0.5,
		CursorMinimumMovementDistance:    500,
		TouchInputMinimumHoverTime:       0.1,
	}
}

// mergeNonZero overwrites every field of dst that has a nonzero value in
// src, leaving the rest (and therefore the defaults they were seeded
// with) untouched. A partially specified settings file never regresses
// the fields it omits back to zero.
func mergeNonZero(dst *Constants, src Constants) {
	dv := fieldsOf(dst)
	sv := fieldsOf(&src)
	for i := range dv {
		if *sv[i] != 0 {
			*dv[i] = *sv[i]
		}
	}
}

func fieldsOf(c *Constants) []*float32 {
	return []*float32{
		&c.GamepadAxisMovementThreshold,
		&c.LeftStickDeadzone,
		&c.RightStickDeadzone,
		&c.LeftStickDPadActivationThreshold,
		&c.LeftStickDPadReleaseThreshold,
		&c.TriggerActivationThreshold,
		&c.TriggerReleaseThreshold,
		&c.MouseMovementThreshold,
		&c.ScrollSpeed,
		&c.DefaultClickTimeout,
		&c.OverlayMenuFrameLockDuration,
		&c.ButtonRepeatInitialDelay,
		&c.ButtonRepeatSubsequentDelay,
		&c.ButtonHoldCoyoteTime,
		&c.SliderHoldActivationTime,
		&c.KeyHoldResetDuration,
		&c.FocusVectorThreshold,
		&c.FocusVibrationIntensity,
		&c.ActionVibrationIntensity,
		&c.SliderDiscreteStep,
		&c.SliderContinuousMultiplier,
		&c.InputBindingDefaultThreshold,
		&c.CursorMinimumMovementDistance,
		&c.TouchInputMinimumHoverTime,
	}
}
