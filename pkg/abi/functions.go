package abi

import (
	"fmt"
	"reflect"
	"strings"
)

// Functions is the boundary function table. Every field corresponds to one
// exported C symbol, named by its abi tag. Providers fill every field;
// [Functions.Validate] reports the ones left nil.
//
// Conventions shared by all entries:
//   - out pointers are written only when the status is OK;
//   - handle-producing calls hand one reference to the caller;
//   - views passed in are borrowed for the call only, views returned stay
//     valid until the next mutating call on the same object.
//
// Fields tagged with the shim option carry Go-typed arguments that cannot
// cross the boundary as-is; a native provider wraps the raw symbol itself.
type Functions struct {
	ABIVersion func() uint32 `abi:"rive_rs_abi_version"`

	FactoryDefault func() Factory        `abi:"rive_rs_factory_default"`
	FactoryWebGL2  func() Factory        `abi:"rive_rs_factory_webgl2"`
	FactoryWebGPU  func() Factory        `abi:"rive_rs_factory_webgpu"`
	FactoryRef     func(factory Factory) `abi:"rive_rs_factory_ref"`
	FactoryUnref   func(factory Factory) `abi:"rive_rs_factory_unref"`

	LoadFile                func(factory Factory, bytes BytesView, out *File) Status                                  `abi:"rive_rs_load_file"`
	LoadFileWithAssetLoader func(factory Factory, bytes BytesView, callbacks *AssetLoaderCallbacks, out *File) Status `abi:"rive_rs_load_file_with_asset_loader,shim"`

	FileRef                          func(file File)                                                     `abi:"rive_rs_file_ref"`
	FileUnref                        func(file File)                                                     `abi:"rive_rs_file_unref"`
	FileArtboardCount                func(file File) uintptr                                             `abi:"rive_rs_file_artboard_count"`
	FileArtboardDefault              func(file File, out *Artboard) Status                               `abi:"rive_rs_file_artboard_default"`
	FileArtboardByIndex              func(file File, index uintptr, out *Artboard) Status                `abi:"rive_rs_file_artboard_by_index"`
	FileArtboardByName               func(file File, name StrView, out *Artboard) Status                 `abi:"rive_rs_file_artboard_by_name"`
	FileViewModelCount               func(file File) uintptr                                             `abi:"rive_rs_file_view_model_count"`
	FileViewModelByIndex             func(file File, index uintptr, out *ViewModel) Status               `abi:"rive_rs_file_view_model_by_index"`
	FileViewModelByName              func(file File, name StrView, out *ViewModel) Status                `abi:"rive_rs_file_view_model_by_name"`
	FileDefaultArtboardViewModel     func(file File, artboard Artboard, out *ViewModel) Status           `abi:"rive_rs_file_default_artboard_view_model"`
	FileBindableArtboardByName       func(file File, name StrView, out *BindableArtboard) Status         `abi:"rive_rs_file_bindable_artboard_by_name"`
	FileBindableArtboardDefault      func(file File, out *BindableArtboard) Status                       `abi:"rive_rs_file_bindable_artboard_default"`
	FileBindableArtboardFromArtboard func(file File, artboard Artboard, out *BindableArtboard) Status    `abi:"rive_rs_file_bindable_artboard_from_artboard"`
	FileHasAudio                     func(file File) bool                                                `abi:"rive_rs_file_has_audio"`
	FileEnumCount                    func(file File) uintptr                                             `abi:"rive_rs_file_enum_count"`
	FileEnumNameAt                   func(file File, enumIndex uintptr, out *StrView) Status             `abi:"rive_rs_file_enum_name_at"`
	FileEnumValueCount               func(file File, enumIndex uintptr) uintptr                          `abi:"rive_rs_file_enum_value_count"`
	FileEnumValueNameAt              func(file File, enumIndex, valueIndex uintptr, out *StrView) Status `abi:"rive_rs_file_enum_value_name_at"`

	ArtboardRef                      func(artboard Artboard)                                                                   `abi:"rive_rs_artboard_ref"`
	ArtboardUnref                    func(artboard Artboard)                                                                   `abi:"rive_rs_artboard_unref"`
	ArtboardAdvance                  func(artboard Artboard, seconds float32, changed *bool) Status                            `abi:"rive_rs_artboard_advance"`
	ArtboardDraw                     func(artboard Artboard, renderer Renderer) Status                                         `abi:"rive_rs_artboard_draw"`
	ArtboardDrawWebGL2               func(artboard Artboard, renderer WebGL2Renderer) Status                                   `abi:"rive_rs_artboard_draw_webgl2"`
	ArtboardDrawWebGPU               func(artboard Artboard, renderer WebGPURenderer) Status                                   `abi:"rive_rs_artboard_draw_webgpu"`
	ArtboardDidChange                func(artboard Artboard) bool                                                              `abi:"rive_rs_artboard_did_change"`
	ArtboardName                     func(artboard Artboard) StrView                                                           `abi:"rive_rs_artboard_name"`
	ArtboardBounds                   func(artboard Artboard) AABB                                                              `abi:"rive_rs_artboard_bounds"`
	ArtboardWidth                    func(artboard Artboard) float32                                                           `abi:"rive_rs_artboard_width"`
	ArtboardHeight                   func(artboard Artboard) float32                                                           `abi:"rive_rs_artboard_height"`
	ArtboardSetWidth                 func(artboard Artboard, width float32)                                                    `abi:"rive_rs_artboard_set_width"`
	ArtboardSetHeight                func(artboard Artboard, height float32)                                                   `abi:"rive_rs_artboard_set_height"`
	ArtboardFrameOrigin              func(artboard Artboard) bool                                                              `abi:"rive_rs_artboard_frame_origin"`
	ArtboardSetFrameOrigin           func(artboard Artboard, frameOrigin bool)                                                 `abi:"rive_rs_artboard_set_frame_origin"`
	ArtboardHasAudio                 func(artboard Artboard) bool                                                              `abi:"rive_rs_artboard_has_audio"`
	ArtboardVolume                   func(artboard Artboard) float32                                                           `abi:"rive_rs_artboard_volume"`
	ArtboardSetVolume                func(artboard Artboard, volume float32)                                                   `abi:"rive_rs_artboard_set_volume"`
	ArtboardResetSize                func(artboard Artboard) Status                                                            `abi:"rive_rs_artboard_reset_size"`
	ArtboardAnimationCount           func(artboard Artboard) uintptr                                                           `abi:"rive_rs_artboard_animation_count"`
	ArtboardStateMachineCount        func(artboard Artboard) uintptr                                                           `abi:"rive_rs_artboard_state_machine_count"`
	ArtboardEventCount               func(artboard Artboard) uintptr                                                           `abi:"rive_rs_artboard_event_count"`
	ArtboardEventAt                  func(artboard Artboard, index uintptr, out *EventInfo) Status                             `abi:"rive_rs_artboard_event_at"`
	ArtboardEventPropertyAt          func(artboard Artboard, eventIndex, propertyIndex uintptr, out *EventPropertyInfo) Status `abi:"rive_rs_artboard_event_property_at"`
	ArtboardAnimationByIndex         func(artboard Artboard, index uintptr, out *LinearAnimation) Status                       `abi:"rive_rs_artboard_animation_by_index"`
	ArtboardAnimationByName          func(artboard Artboard, name StrView, out *LinearAnimation) Status                        `abi:"rive_rs_artboard_animation_by_name"`
	ArtboardStateMachineByIndex      func(artboard Artboard, index uintptr, out *StateMachine) Status                          `abi:"rive_rs_artboard_state_machine_by_index"`
	ArtboardStateMachineByName       func(artboard Artboard, name StrView, out *StateMachine) Status                           `abi:"rive_rs_artboard_state_machine_by_name"`
	ArtboardInputByPath              func(artboard Artboard, name, path StrView, out *SmiInput) Status                         `abi:"rive_rs_artboard_input_by_path"`
	ArtboardTextValueRunCount        func(artboard Artboard) uintptr                                                           `abi:"rive_rs_artboard_text_value_run_count"`
	ArtboardTextValueRunNameAt       func(artboard Artboard, index uintptr, out *StrView) Status                               `abi:"rive_rs_artboard_text_value_run_name_at"`
	ArtboardTextValueRunTextAt       func(artboard Artboard, index uintptr, out *StrView) Status                               `abi:"rive_rs_artboard_text_value_run_text_at"`
	ArtboardSetTextValueRunTextAt    func(artboard Artboard, index uintptr, text StrView) Status                               `abi:"rive_rs_artboard_set_text_value_run_text_at"`
	ArtboardTextByPathGet            func(artboard Artboard, name, path StrView, out *StrView) Status                          `abi:"rive_rs_artboard_text_by_path_get"`
	ArtboardTextByPathSet            func(artboard Artboard, name, path, text StrView) Status                                  `abi:"rive_rs_artboard_text_by_path_set"`
	ArtboardTransformComponentByName func(artboard Artboard, name StrView, out *TransformComponent) Status                     `abi:"rive_rs_artboard_transform_component_by_name"`
	ArtboardNodeByName               func(artboard Artboard, name StrView, out *Node) Status                                   `abi:"rive_rs_artboard_node_by_name"`
	ArtboardBoneByName               func(artboard Artboard, name StrView, out *Bone) Status                                   `abi:"rive_rs_artboard_bone_by_name"`
	ArtboardRootBoneByName           func(artboard Artboard, name StrView, out *RootBone) Status                               `abi:"rive_rs_artboard_root_bone_by_name"`
	ArtboardTextValueRunByName       func(artboard Artboard, name StrView, out *TextValueRun) Status                           `abi:"rive_rs_artboard_text_value_run_by_name"`
	ArtboardTextValueRunByIndex      func(artboard Artboard, index uintptr, out *TextValueRun) Status                          `abi:"rive_rs_artboard_text_value_run_by_index"`
	ArtboardFlattenPath              func(artboard Artboard, index uintptr, transformToParent bool, out *FlattenedPath) Status `abi:"rive_rs_artboard_flatten_path"`
	ArtboardBindViewModelInstance    func(artboard Artboard, instance ViewModelInstance) Status                                `abi:"rive_rs_artboard_bind_view_model_instance"`

	WebGL2RendererNew             func(width, height int32, out *WebGL2Renderer) Status                                                         `abi:"rive_rs_webgl2_renderer_new"`
	WebGL2RendererDelete          func(renderer WebGL2Renderer)                                                                                 `abi:"rive_rs_webgl2_renderer_delete"`
	WebGL2RendererClear           func(renderer WebGL2Renderer) Status                                                                          `abi:"rive_rs_webgl2_renderer_clear"`
	WebGL2RendererFlush           func(renderer WebGL2Renderer) Status                                                                          `abi:"rive_rs_webgl2_renderer_flush"`
	WebGL2RendererResize          func(renderer WebGL2Renderer, width, height int32) Status                                                     `abi:"rive_rs_webgl2_renderer_resize"`
	WebGL2RendererSave            func(renderer WebGL2Renderer) Status                                                                          `abi:"rive_rs_webgl2_renderer_save"`
	WebGL2RendererRestore         func(renderer WebGL2Renderer) Status                                                                          `abi:"rive_rs_webgl2_renderer_restore"`
	WebGL2RendererTransform       func(renderer WebGL2Renderer, matrix *Mat2D) Status                                                           `abi:"rive_rs_webgl2_renderer_transform"`
	WebGL2RendererModulateOpacity func(renderer WebGL2Renderer, opacity float32) Status                                                         `abi:"rive_rs_webgl2_renderer_modulate_opacity"`
	WebGL2RendererAlign           func(renderer WebGL2Renderer, fit Fit, alignment Alignment, frame, content *AABB, scaleFactor float32) Status `abi:"rive_rs_webgl2_renderer_align"`
	WebGL2RendererSaveClipRect    func(renderer WebGL2Renderer, left, top, right, bottom float32) Status                                        `abi:"rive_rs_webgl2_renderer_save_clip_rect"`
	WebGL2RendererRestoreClipRect func(renderer WebGL2Renderer) Status                                                                          `abi:"rive_rs_webgl2_renderer_restore_clip_rect"`

	WebGPURendererNew             func(width, height int32, out *WebGPURenderer) Status                                                         `abi:"rive_rs_webgpu_renderer_new"`
	WebGPURendererDelete          func(renderer WebGPURenderer)                                                                                 `abi:"rive_rs_webgpu_renderer_delete"`
	WebGPURendererClear           func(renderer WebGPURenderer) Status                                                                          `abi:"rive_rs_webgpu_renderer_clear"`
	WebGPURendererFlush           func(renderer WebGPURenderer) Status                                                                          `abi:"rive_rs_webgpu_renderer_flush"`
	WebGPURendererResize          func(renderer WebGPURenderer, width, height int32) Status                                                     `abi:"rive_rs_webgpu_renderer_resize"`
	WebGPURendererSave            func(renderer WebGPURenderer) Status                                                                          `abi:"rive_rs_webgpu_renderer_save"`
	WebGPURendererRestore         func(renderer WebGPURenderer) Status                                                                          `abi:"rive_rs_webgpu_renderer_restore"`
	WebGPURendererTransform       func(renderer WebGPURenderer, matrix *Mat2D) Status                                                           `abi:"rive_rs_webgpu_renderer_transform"`
	WebGPURendererModulateOpacity func(renderer WebGPURenderer, opacity float32) Status                                                         `abi:"rive_rs_webgpu_renderer_modulate_opacity"`
	WebGPURendererAlign           func(renderer WebGPURenderer, fit Fit, alignment Alignment, frame, content *AABB, scaleFactor float32) Status `abi:"rive_rs_webgpu_renderer_align"`
	WebGPURendererSaveClipRect    func(renderer WebGPURenderer, left, top, right, bottom float32) Status                                        `abi:"rive_rs_webgpu_renderer_save_clip_rect"`
	WebGPURendererRestoreClipRect func(renderer WebGPURenderer) Status                                                                          `abi:"rive_rs_webgpu_renderer_restore_clip_rect"`

	BindableArtboardRef   func(artboard BindableArtboard) `abi:"rive_rs_bindable_artboard_ref"`
	BindableArtboardUnref func(artboard BindableArtboard) `abi:"rive_rs_bindable_artboard_unref"`

	TransformComponentScaleX               func(component TransformComponent) float32            `abi:"rive_rs_transform_component_scale_x"`
	TransformComponentSetScaleX            func(component TransformComponent, value float32)     `abi:"rive_rs_transform_component_set_scale_x"`
	TransformComponentScaleY               func(component TransformComponent) float32            `abi:"rive_rs_transform_component_scale_y"`
	TransformComponentSetScaleY            func(component TransformComponent, value float32)     `abi:"rive_rs_transform_component_set_scale_y"`
	TransformComponentRotation             func(component TransformComponent) float32            `abi:"rive_rs_transform_component_rotation"`
	TransformComponentSetRotation          func(component TransformComponent, value float32)     `abi:"rive_rs_transform_component_set_rotation"`
	TransformComponentWorldTransform       func(component TransformComponent, out *Mat2D) Status `abi:"rive_rs_transform_component_world_transform"`
	TransformComponentParentWorldTransform func(component TransformComponent, out *Mat2D) Status `abi:"rive_rs_transform_component_parent_world_transform"`

	NodeX         func(node Node) float32            `abi:"rive_rs_node_x"`
	NodeSetX      func(node Node, value float32)     `abi:"rive_rs_node_set_x"`
	NodeY         func(node Node) float32            `abi:"rive_rs_node_y"`
	NodeSetY      func(node Node, value float32)     `abi:"rive_rs_node_set_y"`
	BoneLength    func(bone Bone) float32            `abi:"rive_rs_bone_length"`
	BoneSetLength func(bone Bone, value float32)     `abi:"rive_rs_bone_set_length"`
	RootBoneX     func(bone RootBone) float32        `abi:"rive_rs_root_bone_x"`
	RootBoneSetX  func(bone RootBone, value float32) `abi:"rive_rs_root_bone_set_x"`
	RootBoneY     func(bone RootBone) float32        `abi:"rive_rs_root_bone_y"`
	RootBoneSetY  func(bone RootBone, value float32) `abi:"rive_rs_root_bone_set_y"`

	TextValueRunName    func(run TextValueRun) StrView              `abi:"rive_rs_text_value_run_name"`
	TextValueRunText    func(run TextValueRun) StrView              `abi:"rive_rs_text_value_run_text"`
	TextValueRunSetText func(run TextValueRun, text StrView) Status `abi:"rive_rs_text_value_run_set_text"`

	FlattenedPathDelete  func(path FlattenedPath)                                     `abi:"rive_rs_flattened_path_delete"`
	FlattenedPathLength  func(path FlattenedPath) uintptr                             `abi:"rive_rs_flattened_path_length"`
	FlattenedPathIsCubic func(path FlattenedPath, index uintptr, out *bool) Status    `abi:"rive_rs_flattened_path_is_cubic"`
	FlattenedPathX       func(path FlattenedPath, index uintptr, out *float32) Status `abi:"rive_rs_flattened_path_x"`
	FlattenedPathY       func(path FlattenedPath, index uintptr, out *float32) Status `abi:"rive_rs_flattened_path_y"`
	FlattenedPathInX     func(path FlattenedPath, index uintptr, out *float32) Status `abi:"rive_rs_flattened_path_in_x"`
	FlattenedPathInY     func(path FlattenedPath, index uintptr, out *float32) Status `abi:"rive_rs_flattened_path_in_y"`
	FlattenedPathOutX    func(path FlattenedPath, index uintptr, out *float32) Status `abi:"rive_rs_flattened_path_out_x"`
	FlattenedPathOutY    func(path FlattenedPath, index uintptr, out *float32) Status `abi:"rive_rs_flattened_path_out_y"`

	LinearAnimationInstanceNew    func(animation LinearAnimation, artboard Artboard, out *LinearAnimationInstance) Status `abi:"rive_rs_linear_animation_instance_new"`
	LinearAnimationName           func(animation LinearAnimation) StrView                                                 `abi:"rive_rs_linear_animation_name"`
	LinearAnimationDuration       func(animation LinearAnimation) uint32                                                  `abi:"rive_rs_linear_animation_duration"`
	LinearAnimationFPS            func(animation LinearAnimation) uint32                                                  `abi:"rive_rs_linear_animation_fps"`
	LinearAnimationWorkStart      func(animation LinearAnimation) uint32                                                  `abi:"rive_rs_linear_animation_work_start"`
	LinearAnimationWorkEnd        func(animation LinearAnimation) uint32                                                  `abi:"rive_rs_linear_animation_work_end"`
	LinearAnimationEnableWorkArea func(animation LinearAnimation) bool                                                    `abi:"rive_rs_linear_animation_enable_work_area"`
	LinearAnimationLoopValue      func(animation LinearAnimation) uint32                                                  `abi:"rive_rs_linear_animation_loop_value"`
	LinearAnimationSpeed          func(animation LinearAnimation) float32                                                 `abi:"rive_rs_linear_animation_speed"`
	LinearAnimationApply          func(animation LinearAnimation, artboard Artboard, time, mix float32) Status            `abi:"rive_rs_linear_animation_apply"`

	LinearAnimationInstanceDelete  func(instance LinearAnimationInstance)                                        `abi:"rive_rs_linear_animation_instance_delete"`
	LinearAnimationInstanceAdvance func(instance LinearAnimationInstance, seconds float32, looped *bool) Status  `abi:"rive_rs_linear_animation_instance_advance"`
	LinearAnimationInstanceApply   func(instance LinearAnimationInstance, artboard Artboard, mix float32) Status `abi:"rive_rs_linear_animation_instance_apply"`
	LinearAnimationInstanceTime    func(instance LinearAnimationInstance) float32                                `abi:"rive_rs_linear_animation_instance_time"`
	LinearAnimationInstanceSetTime func(instance LinearAnimationInstance, seconds float32)                       `abi:"rive_rs_linear_animation_instance_set_time"`
	LinearAnimationInstanceDidLoop func(instance LinearAnimationInstance) bool                                   `abi:"rive_rs_linear_animation_instance_did_loop"`

	StateMachineInstanceNew             func(stateMachine StateMachine, artboard Artboard, out *StateMachineInstance) Status `abi:"rive_rs_state_machine_instance_new"`
	StateMachineName                    func(stateMachine StateMachine) StrView                                              `abi:"rive_rs_state_machine_name"`
	StateMachineInstanceDelete          func(instance StateMachineInstance)                                                  `abi:"rive_rs_state_machine_instance_delete"`
	StateMachineInstanceAdvance         func(instance StateMachineInstance, seconds float32, changed *bool) Status           `abi:"rive_rs_state_machine_instance_advance"`
	StateMachineInstanceAdvanceAndApply func(instance StateMachineInstance, seconds float32, changed *bool) Status           `abi:"rive_rs_state_machine_instance_advance_and_apply"`
	StateMachineInputCount              func(instance StateMachineInstance) uintptr                                          `abi:"rive_rs_state_machine_input_count"`
	StateMachineInputAt                 func(instance StateMachineInstance, index uintptr, out *SmiInput) Status             `abi:"rive_rs_state_machine_input_at"`

	SmiInputTypeOf    func(input SmiInput) SmiInputType            `abi:"rive_rs_smi_input_type_of"`
	SmiInputName      func(input SmiInput) StrView                 `abi:"rive_rs_smi_input_name"`
	SmiInputAsBool    func(input SmiInput, out *SmiBool) Status    `abi:"rive_rs_smi_input_as_bool"`
	SmiInputAsNumber  func(input SmiInput, out *SmiNumber) Status  `abi:"rive_rs_smi_input_as_number"`
	SmiInputAsTrigger func(input SmiInput, out *SmiTrigger) Status `abi:"rive_rs_smi_input_as_trigger"`
	SmiBoolGet        func(input SmiBool) bool                     `abi:"rive_rs_smi_bool_get"`
	SmiBoolSet        func(input SmiBool, value bool)              `abi:"rive_rs_smi_bool_set"`
	SmiNumberGet      func(input SmiNumber) float32                `abi:"rive_rs_smi_number_get"`
	SmiNumberSet      func(input SmiNumber, value float32)         `abi:"rive_rs_smi_number_set"`
	SmiTriggerFire    func(input SmiTrigger)                       `abi:"rive_rs_smi_trigger_fire"`

	StateMachineInstancePointerDown    func(instance StateMachineInstance, point Vec2, pointerID int32) Status `abi:"rive_rs_state_machine_instance_pointer_down"`
	StateMachineInstancePointerMove    func(instance StateMachineInstance, point Vec2, pointerID int32) Status `abi:"rive_rs_state_machine_instance_pointer_move"`
	StateMachineInstancePointerUp      func(instance StateMachineInstance, point Vec2, pointerID int32) Status `abi:"rive_rs_state_machine_instance_pointer_up"`
	StateMachineInstancePointerExit    func(instance StateMachineInstance, point Vec2, pointerID int32) Status `abi:"rive_rs_state_machine_instance_pointer_exit"`
	StateMachineInstanceHasListeners   func(instance StateMachineInstance) bool                                `abi:"rive_rs_state_machine_instance_has_listeners"`
	StateMachineInstanceHasAnyListener func(instance StateMachineInstance) bool                                `abi:"rive_rs_state_machine_instance_has_any_listener"`

	StateMachineReportedEventCount            func(instance StateMachineInstance) uintptr                                                           `abi:"rive_rs_state_machine_reported_event_count"`
	StateMachineReportedEventAt               func(instance StateMachineInstance, index uintptr, out *EventInfo, delaySeconds *float32) Status      `abi:"rive_rs_state_machine_reported_event_at"`
	StateMachineReportedEventPropertyAt       func(instance StateMachineInstance, eventIndex, propertyIndex uintptr, out *EventPropertyInfo) Status `abi:"rive_rs_state_machine_reported_event_property_at"`
	StateMachineStateChangedCount             func(instance StateMachineInstance) uintptr                                                           `abi:"rive_rs_state_machine_state_changed_count"`
	StateMachineStateChangedNameAt            func(instance StateMachineInstance, index uintptr, out *StrView) Status                               `abi:"rive_rs_state_machine_state_changed_name_at"`
	StateMachineInstanceBindViewModelInstance func(instance StateMachineInstance, viewModelInstance ViewModelInstance) Status                       `abi:"rive_rs_state_machine_instance_bind_view_model_instance"`

	ViewModelRef             func(viewModel ViewModel)                                               `abi:"rive_rs_view_model_ref"`
	ViewModelUnref           func(viewModel ViewModel)                                               `abi:"rive_rs_view_model_unref"`
	ViewModelName            func(viewModel ViewModel) StrView                                       `abi:"rive_rs_view_model_name"`
	ViewModelPropertyCount   func(viewModel ViewModel) uintptr                                       `abi:"rive_rs_view_model_property_count"`
	ViewModelInstanceCount   func(viewModel ViewModel) uintptr                                       `abi:"rive_rs_view_model_instance_count"`
	ViewModelPropertyAt      func(viewModel ViewModel, index uintptr, out *PropertyInfo) Status      `abi:"rive_rs_view_model_property_at"`
	ViewModelInstanceNameAt  func(viewModel ViewModel, index uintptr, out *StrView) Status           `abi:"rive_rs_view_model_instance_name_at"`
	ViewModelInstanceByIndex func(viewModel ViewModel, index uintptr, out *ViewModelInstance) Status `abi:"rive_rs_view_model_instance_by_index"`
	ViewModelInstanceByName  func(viewModel ViewModel, name StrView, out *ViewModelInstance) Status  `abi:"rive_rs_view_model_instance_by_name"`
	ViewModelDefaultInstance func(viewModel ViewModel, out *ViewModelInstance) Status                `abi:"rive_rs_view_model_default_instance"`
	ViewModelNewInstance     func(viewModel ViewModel, out *ViewModelInstance) Status                `abi:"rive_rs_view_model_new_instance"`

	ViewModelInstanceRef                  func(instance ViewModelInstance)                                                                           `abi:"rive_rs_view_model_instance_ref"`
	ViewModelInstanceUnref                func(instance ViewModelInstance)                                                                           `abi:"rive_rs_view_model_instance_unref"`
	ViewModelInstancePropertyCount        func(instance ViewModelInstance) uintptr                                                                   `abi:"rive_rs_view_model_instance_property_count"`
	ViewModelInstancePropertyAt           func(instance ViewModelInstance, index uintptr, out *PropertyInfo) Status                                  `abi:"rive_rs_view_model_instance_property_at"`
	ViewModelInstanceGetNumber            func(instance ViewModelInstance, path StrView, out *float32) Status                                        `abi:"rive_rs_view_model_instance_get_number"`
	ViewModelInstanceSetNumber            func(instance ViewModelInstance, path StrView, value float32) Status                                       `abi:"rive_rs_view_model_instance_set_number"`
	ViewModelInstanceGetString            func(instance ViewModelInstance, path StrView, out *StrView) Status                                        `abi:"rive_rs_view_model_instance_get_string"`
	ViewModelInstanceSetString            func(instance ViewModelInstance, path, value StrView) Status                                               `abi:"rive_rs_view_model_instance_set_string"`
	ViewModelInstanceGetBoolean           func(instance ViewModelInstance, path StrView, out *bool) Status                                           `abi:"rive_rs_view_model_instance_get_boolean"`
	ViewModelInstanceSetBoolean           func(instance ViewModelInstance, path StrView, value bool) Status                                          `abi:"rive_rs_view_model_instance_set_boolean"`
	ViewModelInstanceGetColor             func(instance ViewModelInstance, path StrView, out *int32) Status                                          `abi:"rive_rs_view_model_instance_get_color"`
	ViewModelInstanceSetColor             func(instance ViewModelInstance, path StrView, argb int32) Status                                          `abi:"rive_rs_view_model_instance_set_color"`
	ViewModelInstanceGetEnum              func(instance ViewModelInstance, path StrView, out *StrView) Status                                        `abi:"rive_rs_view_model_instance_get_enum"`
	ViewModelInstanceSetEnum              func(instance ViewModelInstance, path, value StrView) Status                                               `abi:"rive_rs_view_model_instance_set_enum"`
	ViewModelInstanceGetEnumIndex         func(instance ViewModelInstance, path StrView, out *uint32) Status                                         `abi:"rive_rs_view_model_instance_get_enum_index"`
	ViewModelInstanceSetEnumIndex         func(instance ViewModelInstance, path StrView, index uint32) Status                                        `abi:"rive_rs_view_model_instance_set_enum_index"`
	ViewModelInstanceFireTrigger          func(instance ViewModelInstance, path StrView) Status                                                      `abi:"rive_rs_view_model_instance_fire_trigger"`
	ViewModelInstanceGetViewModel         func(instance ViewModelInstance, path StrView, out *ViewModelInstance) Status                              `abi:"rive_rs_view_model_instance_get_view_model"`
	ViewModelInstanceReplaceViewModel     func(instance ViewModelInstance, path StrView, value ViewModelInstance) Status                             `abi:"rive_rs_view_model_instance_replace_view_model"`
	ViewModelInstancePropertyHasChanged   func(instance ViewModelInstance, path StrView, out *bool) Status                                           `abi:"rive_rs_view_model_instance_property_has_changed"`
	ViewModelInstanceClearPropertyChanges func(instance ViewModelInstance, path StrView) Status                                                      `abi:"rive_rs_view_model_instance_clear_property_changes"`
	ViewModelInstanceListSize             func(instance ViewModelInstance, path StrView, out *uintptr) Status                                        `abi:"rive_rs_view_model_instance_list_size"`
	ViewModelInstanceListInstanceAt       func(instance ViewModelInstance, path StrView, index uintptr, out *ViewModelInstance) Status               `abi:"rive_rs_view_model_instance_list_instance_at"`
	ViewModelInstanceListAddInstance      func(instance ViewModelInstance, path StrView, value ViewModelInstance) Status                             `abi:"rive_rs_view_model_instance_list_add_instance"`
	ViewModelInstanceListAddInstanceAt    func(instance ViewModelInstance, path StrView, value ViewModelInstance, index uintptr, added *bool) Status `abi:"rive_rs_view_model_instance_list_add_instance_at"`
	ViewModelInstanceListRemoveInstance   func(instance ViewModelInstance, path StrView, value ViewModelInstance) Status                             `abi:"rive_rs_view_model_instance_list_remove_instance"`
	ViewModelInstanceListRemoveInstanceAt func(instance ViewModelInstance, path StrView, index uintptr) Status                                       `abi:"rive_rs_view_model_instance_list_remove_instance_at"`
	ViewModelInstanceListSwap             func(instance ViewModelInstance, path StrView, a, b uint32) Status                                         `abi:"rive_rs_view_model_instance_list_swap"`
	ViewModelInstanceSetArtboard          func(instance ViewModelInstance, path StrView, value BindableArtboard) Status                              `abi:"rive_rs_view_model_instance_set_artboard"`
	ViewModelInstanceSetArtboardViewModel func(instance ViewModelInstance, path StrView, value ViewModelInstance) Status                             `abi:"rive_rs_view_model_instance_set_artboard_view_model"`
	ViewModelInstanceSetImage             func(instance ViewModelInstance, path StrView, value RenderImage) Status                                   `abi:"rive_rs_view_model_instance_set_image"`
	ViewModelInstanceGetImage             func(instance ViewModelInstance, path StrView, out *RenderImage) Status                                    `abi:"rive_rs_view_model_instance_get_image"`

	ComputeAlignment func(fit Fit, alignment Alignment, source, destination *AABB, scaleFactor float32, out *Mat2D) Status `abi:"rive_rs_compute_alignment"`
	MapXY            func(matrix *Mat2D, point Vec2, out *Vec2) Status                                                     `abi:"rive_rs_map_xy"`

	DecodeAudio       func(factory Factory, bytes BytesView, out *AudioSource) Status `abi:"rive_rs_decode_audio"`
	DecodeFont        func(factory Factory, bytes BytesView, out *Font) Status        `abi:"rive_rs_decode_font"`
	DecodeWebGL2Image func(bytes BytesView, out *RenderImage) Status                  `abi:"rive_rs_decode_webgl2_image"`
	AudioSourceUnref  func(audio AudioSource)                                         `abi:"rive_rs_audio_source_unref"`
	FontUnref         func(font Font)                                                 `abi:"rive_rs_font_unref"`
	RenderImageRef    func(image RenderImage)                                         `abi:"rive_rs_render_image_ref"`
	RenderImageUnref  func(image RenderImage)                                         `abi:"rive_rs_render_image_unref"`

	PtrToFileAsset  func(pointer uintptr) FileAsset `abi:"rive_rs_ptr_to_file_asset"`
	PtrToAudioAsset func(pointer uintptr) FileAsset `abi:"rive_rs_ptr_to_audio_asset"`
	PtrToImageAsset func(pointer uintptr) FileAsset `abi:"rive_rs_ptr_to_image_asset"`
	PtrToFontAsset  func(pointer uintptr) FileAsset `abi:"rive_rs_ptr_to_font_asset"`

	FileAssetName            func(asset FileAsset) StrView                                  `abi:"rive_rs_file_asset_name"`
	FileAssetCDNBaseURL      func(asset FileAsset) StrView                                  `abi:"rive_rs_file_asset_cdn_base_url"`
	FileAssetFileExtension   func(asset FileAsset) StrView                                  `abi:"rive_rs_file_asset_file_extension"`
	FileAssetUniqueFilename  func(asset FileAsset) StrView                                  `abi:"rive_rs_file_asset_unique_filename"`
	FileAssetIsAudio         func(asset FileAsset) bool                                     `abi:"rive_rs_file_asset_is_audio"`
	FileAssetIsImage         func(asset FileAsset) bool                                     `abi:"rive_rs_file_asset_is_image"`
	FileAssetIsFont          func(asset FileAsset) bool                                     `abi:"rive_rs_file_asset_is_font"`
	FileAssetCDNUUID         func(asset FileAsset) StrView                                  `abi:"rive_rs_file_asset_cdn_uuid"`
	FileAssetDecode          func(factory Factory, asset FileAsset, bytes BytesView) Status `abi:"rive_rs_file_asset_decode"`
	AudioAssetSetAudioSource func(asset FileAsset, audio AudioSource) Status                `abi:"rive_rs_audio_asset_set_audio_source"`
	FontAssetSetFont         func(asset FileAsset, font Font) Status                        `abi:"rive_rs_font_asset_set_font"`
	ImageAssetSetRenderImage func(asset FileAsset, image RenderImage) Status                `abi:"rive_rs_image_asset_set_render_image"`
}

// Symbol describes one entry of the function table.
type Symbol struct {
	// Name is the exported C symbol.
	Name string
	// Field is the Go field name in Functions.
	Field string
	// Shim marks entries whose Go signature differs from the C one.
	Shim bool
}

// Symbols lists every boundary function in declaration order.
func Symbols() []Symbol {
	t := reflect.TypeOf(Functions{})
	out := make([]Symbol, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("abi")
		if !ok {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		out = append(out, Symbol{Name: name, Field: f.Name, Shim: opts == "shim"})
	}
	return out
}

// Validate returns an error naming every table entry that is still nil.
func (f *Functions) Validate() error {
	if f == nil {
		return fmt.Errorf("abi: nil function table")
	}
	v := reflect.ValueOf(f).Elem()
	var missing []string
	for _, sym := range Symbols() {
		if v.FieldByName(sym.Field).IsNil() {
			missing = append(missing, sym.Name)
		}
	}
	if len(missing) > 0 {
		return &MissingSymbolsError{Symbols: missing}
	}
	return nil
}

// Bind fills every non-shim entry of f. resolve maps a symbol name to its
// address and register installs a function pointer into the Go func value
// pointed to by fptr. All unresolved symbols are collected into one error.
func Bind(f *Functions, resolve func(name string) (uintptr, error), register func(fptr any, addr uintptr)) error {
	v := reflect.ValueOf(f).Elem()
	var missing []string
	for _, sym := range Symbols() {
		if sym.Shim {
			continue
		}
		addr, err := resolve(sym.Name)
		if err != nil || addr == 0 {
			missing = append(missing, sym.Name)
			continue
		}
		register(v.FieldByName(sym.Field).Addr().Interface(), addr)
	}
	if len(missing) > 0 {
		return &MissingSymbolsError{Symbols: missing}
	}
	return nil
}

// MissingSymbolsError lists boundary functions a provider did not supply.
type MissingSymbolsError struct {
	Symbols []string
}

func (e *MissingSymbolsError) Error() string {
	if len(e.Symbols) == 1 {
		return "abi: missing symbol " + e.Symbols[0]
	}
	return fmt.Sprintf("abi: %d missing symbols, first %s", len(e.Symbols), e.Symbols[0])
}
