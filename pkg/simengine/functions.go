package simengine

import "github.com/go-drift/rive/pkg/abi"

// Functions returns a complete table backed by e.
func (e *Engine) Functions() *abi.Functions {
	type (
		gl2 = abi.WebGL2Renderer
		gpu = abi.WebGPURenderer
	)
	return &abi.Functions{
		ABIVersion: e.abiVersion,

		FactoryDefault: e.factoryDefault,
		FactoryWebGL2:  e.factoryWebGL2,
		FactoryWebGPU:  e.factoryWebGPU,
		FactoryRef:     e.factoryRef,
		FactoryUnref:   e.factoryUnref,

		LoadFile:                e.loadFile,
		LoadFileWithAssetLoader: e.loadFileWithAssetLoader,

		FileRef:                          e.fileRef,
		FileUnref:                        e.fileUnref,
		FileArtboardCount:                e.fileArtboardCount,
		FileArtboardDefault:              e.fileArtboardDefault,
		FileArtboardByIndex:              e.fileArtboardByIndex,
		FileArtboardByName:               e.fileArtboardByName,
		FileViewModelCount:               e.fileViewModelCount,
		FileViewModelByIndex:             e.fileViewModelByIndex,
		FileViewModelByName:              e.fileViewModelByName,
		FileDefaultArtboardViewModel:     e.fileDefaultArtboardViewModel,
		FileBindableArtboardByName:       e.fileBindableArtboardByName,
		FileBindableArtboardDefault:      e.fileBindableArtboardDefault,
		FileBindableArtboardFromArtboard: e.fileBindableArtboardFromArtboard,
		FileHasAudio:                     e.fileHasAudio,
		FileEnumCount:                    e.fileEnumCount,
		FileEnumNameAt:                   e.fileEnumNameAt,
		FileEnumValueCount:               e.fileEnumValueCount,
		FileEnumValueNameAt:              e.fileEnumValueNameAt,

		ArtboardRef:                      e.artboardRef,
		ArtboardUnref:                    e.artboardUnref,
		ArtboardAdvance:                  e.artboardAdvance,
		ArtboardDraw:                     e.artboardDraw,
		ArtboardDrawWebGL2:               e.artboardDrawWebGL2,
		ArtboardDrawWebGPU:               e.artboardDrawWebGPU,
		ArtboardDidChange:                e.artboardDidChange,
		ArtboardName:                     e.artboardName,
		ArtboardBounds:                   e.artboardBounds,
		ArtboardWidth:                    e.artboardWidth,
		ArtboardHeight:                   e.artboardHeight,
		ArtboardSetWidth:                 e.artboardSetWidth,
		ArtboardSetHeight:                e.artboardSetHeight,
		ArtboardFrameOrigin:              e.artboardFrameOrigin,
		ArtboardSetFrameOrigin:           e.artboardSetFrameOrigin,
		ArtboardHasAudio:                 e.artboardHasAudio,
		ArtboardVolume:                   e.artboardVolume,
		ArtboardSetVolume:                e.artboardSetVolume,
		ArtboardResetSize:                e.artboardResetSize,
		ArtboardAnimationCount:           e.artboardAnimationCount,
		ArtboardStateMachineCount:        e.artboardStateMachineCount,
		ArtboardEventCount:               e.artboardEventCount,
		ArtboardEventAt:                  e.artboardEventAt,
		ArtboardEventPropertyAt:          e.artboardEventPropertyAt,
		ArtboardAnimationByIndex:         e.artboardAnimationByIndex,
		ArtboardAnimationByName:          e.artboardAnimationByName,
		ArtboardStateMachineByIndex:      e.artboardStateMachineByIndex,
		ArtboardStateMachineByName:       e.artboardStateMachineByName,
		ArtboardInputByPath:              e.artboardInputByPath,
		ArtboardTextValueRunCount:        e.artboardTextValueRunCount,
		ArtboardTextValueRunNameAt:       e.artboardTextValueRunNameAt,
		ArtboardTextValueRunTextAt:       e.artboardTextValueRunTextAt,
		ArtboardSetTextValueRunTextAt:    e.artboardSetTextValueRunTextAt,
		ArtboardTextByPathGet:            e.artboardTextByPathGet,
		ArtboardTextByPathSet:            e.artboardTextByPathSet,
		ArtboardTransformComponentByName: e.artboardTransformComponentByName,
		ArtboardNodeByName:               e.artboardNodeByName,
		ArtboardBoneByName:               e.artboardBoneByName,
		ArtboardRootBoneByName:           e.artboardRootBoneByName,
		ArtboardTextValueRunByName:       e.artboardTextValueRunByName,
		ArtboardTextValueRunByIndex:      e.artboardTextValueRunByIndex,
		ArtboardFlattenPath:              e.artboardFlattenPath,
		ArtboardBindViewModelInstance:    e.artboardBindViewModelInstance,

		WebGL2RendererNew:             e.webGL2RendererNew,
		WebGL2RendererDelete:          gpuDelete[gl2],
		WebGL2RendererClear:           gpuOp[gl2],
		WebGL2RendererFlush:           gpuOp[gl2],
		WebGL2RendererResize:          gpuResize[gl2],
		WebGL2RendererSave:            gpuOp[gl2],
		WebGL2RendererRestore:         gpuOp[gl2],
		WebGL2RendererTransform:       gpuTransform[gl2],
		WebGL2RendererModulateOpacity: gpuOpacity[gl2],
		WebGL2RendererAlign:           gpuAlign[gl2],
		WebGL2RendererSaveClipRect:    gpuClip[gl2],
		WebGL2RendererRestoreClipRect: gpuOp[gl2],

		WebGPURendererNew:             e.webGPURendererNew,
		WebGPURendererDelete:          gpuDelete[gpu],
		WebGPURendererClear:           gpuOp[gpu],
		WebGPURendererFlush:           gpuOp[gpu],
		WebGPURendererResize:          gpuResize[gpu],
		WebGPURendererSave:            gpuOp[gpu],
		WebGPURendererRestore:         gpuOp[gpu],
		WebGPURendererTransform:       gpuTransform[gpu],
		WebGPURendererModulateOpacity: gpuOpacity[gpu],
		WebGPURendererAlign:           gpuAlign[gpu],
		WebGPURendererSaveClipRect:    gpuClip[gpu],
		WebGPURendererRestoreClipRect: gpuOp[gpu],

		BindableArtboardRef:   e.bindableArtboardRef,
		BindableArtboardUnref: e.bindableArtboardUnref,

		TransformComponentScaleX:               e.transformComponentScaleX,
		TransformComponentSetScaleX:            e.transformComponentSetScaleX,
		TransformComponentScaleY:               e.transformComponentScaleY,
		TransformComponentSetScaleY:            e.transformComponentSetScaleY,
		TransformComponentRotation:             e.transformComponentRotation,
		TransformComponentSetRotation:          e.transformComponentSetRotation,
		TransformComponentWorldTransform:       e.transformComponentWorldTransform,
		TransformComponentParentWorldTransform: e.transformComponentParentWorldTransform,

		NodeX:         e.nodeX,
		NodeSetX:      e.nodeSetX,
		NodeY:         e.nodeY,
		NodeSetY:      e.nodeSetY,
		BoneLength:    e.boneLength,
		BoneSetLength: e.boneSetLength,
		RootBoneX:     e.rootBoneX,
		RootBoneSetX:  e.rootBoneSetX,
		RootBoneY:     e.rootBoneY,
		RootBoneSetY:  e.rootBoneSetY,

		TextValueRunName:    e.textValueRunName,
		TextValueRunText:    e.textValueRunText,
		TextValueRunSetText: e.textValueRunSetText,

		FlattenedPathDelete:  e.flattenedPathDelete,
		FlattenedPathLength:  e.flattenedPathLength,
		FlattenedPathIsCubic: e.flattenedPathIsCubic,
		FlattenedPathX:       e.flattenedPathX,
		FlattenedPathY:       e.flattenedPathY,
		FlattenedPathInX:     e.flattenedPathInX,
		FlattenedPathInY:     e.flattenedPathInY,
		FlattenedPathOutX:    e.flattenedPathOutX,
		FlattenedPathOutY:    e.flattenedPathOutY,

		LinearAnimationInstanceNew:    e.linearAnimationInstanceNew,
		LinearAnimationName:           e.linearAnimationName,
		LinearAnimationDuration:       e.linearAnimationDuration,
		LinearAnimationFPS:            e.linearAnimationFPS,
		LinearAnimationWorkStart:      e.linearAnimationWorkStart,
		LinearAnimationWorkEnd:        e.linearAnimationWorkEnd,
		LinearAnimationEnableWorkArea: e.linearAnimationEnableWorkArea,
		LinearAnimationLoopValue:      e.linearAnimationLoopValue,
		LinearAnimationSpeed:          e.linearAnimationSpeed,
		LinearAnimationApply:          e.linearAnimationApply,

		LinearAnimationInstanceDelete:  e.linearAnimationInstanceDelete,
		LinearAnimationInstanceAdvance: e.linearAnimationInstanceAdvance,
		LinearAnimationInstanceApply:   e.linearAnimationInstanceApply,
		LinearAnimationInstanceTime:    e.linearAnimationInstanceTime,
		LinearAnimationInstanceSetTime: e.linearAnimationInstanceSetTime,
		LinearAnimationInstanceDidLoop: e.linearAnimationInstanceDidLoop,

		StateMachineInstanceNew:             e.stateMachineInstanceNew,
		StateMachineName:                    e.stateMachineName,
		StateMachineInstanceDelete:          e.stateMachineInstanceDelete,
		StateMachineInstanceAdvance:         e.stateMachineInstanceAdvance,
		StateMachineInstanceAdvanceAndApply: e.stateMachineInstanceAdvanceAndApply,
		StateMachineInputCount:              e.stateMachineInputCount,
		StateMachineInputAt:                 e.stateMachineInputAt,

		SmiInputTypeOf:    e.smiInputTypeOf,
		SmiInputName:      e.smiInputName,
		SmiInputAsBool:    e.smiInputAsBool,
		SmiInputAsNumber:  e.smiInputAsNumber,
		SmiInputAsTrigger: e.smiInputAsTrigger,
		SmiBoolGet:        e.smiBoolGet,
		SmiBoolSet:        e.smiBoolSet,
		SmiNumberGet:      e.smiNumberGet,
		SmiNumberSet:      e.smiNumberSet,
		SmiTriggerFire:    e.smiTriggerFire,

		StateMachineInstancePointerDown:    e.stateMachineInstancePointerDown,
		StateMachineInstancePointerMove:    e.stateMachineInstancePointerMove,
		StateMachineInstancePointerUp:      e.stateMachineInstancePointerUp,
		StateMachineInstancePointerExit:    e.stateMachineInstancePointerExit,
		StateMachineInstanceHasListeners:   e.stateMachineInstanceHasListeners,
		StateMachineInstanceHasAnyListener: e.stateMachineInstanceHasAnyListener,

		StateMachineReportedEventCount:            e.stateMachineReportedEventCount,
		StateMachineReportedEventAt:               e.stateMachineReportedEventAt,
		StateMachineReportedEventPropertyAt:       e.stateMachineReportedEventPropertyAt,
		StateMachineStateChangedCount:             e.stateMachineStateChangedCount,
		StateMachineStateChangedNameAt:            e.stateMachineStateChangedNameAt,
		StateMachineInstanceBindViewModelInstance: e.stateMachineInstanceBindViewModelInstance,

		ViewModelRef:             e.viewModelRef,
		ViewModelUnref:           e.viewModelUnref,
		ViewModelName:            e.viewModelName,
		ViewModelPropertyCount:   e.viewModelPropertyCount,
		ViewModelInstanceCount:   e.viewModelInstanceCount,
		ViewModelPropertyAt:      e.viewModelPropertyAt,
		ViewModelInstanceNameAt:  e.viewModelInstanceNameAt,
		ViewModelInstanceByIndex: e.viewModelInstanceByIndex,
		ViewModelInstanceByName:  e.viewModelInstanceByName,
		ViewModelDefaultInstance: e.viewModelDefaultInstance,
		ViewModelNewInstance:     e.viewModelNewInstance,

		ViewModelInstanceRef:                  e.viewModelInstanceRef,
		ViewModelInstanceUnref:                e.viewModelInstanceUnref,
		ViewModelInstancePropertyCount:        e.viewModelInstancePropertyCount,
		ViewModelInstancePropertyAt:           e.viewModelInstancePropertyAt,
		ViewModelInstanceGetNumber:            e.viewModelInstanceGetNumber,
		ViewModelInstanceSetNumber:            e.viewModelInstanceSetNumber,
		ViewModelInstanceGetString:            e.viewModelInstanceGetString,
		ViewModelInstanceSetString:            e.viewModelInstanceSetString,
		ViewModelInstanceGetBoolean:           e.viewModelInstanceGetBoolean,
		ViewModelInstanceSetBoolean:           e.viewModelInstanceSetBoolean,
		ViewModelInstanceGetColor:             e.viewModelInstanceGetColor,
		ViewModelInstanceSetColor:             e.viewModelInstanceSetColor,
		ViewModelInstanceGetEnum:              e.viewModelInstanceGetEnum,
		ViewModelInstanceSetEnum:              e.viewModelInstanceSetEnum,
		ViewModelInstanceGetEnumIndex:         e.viewModelInstanceGetEnumIndex,
		ViewModelInstanceSetEnumIndex:         e.viewModelInstanceSetEnumIndex,
		ViewModelInstanceFireTrigger:          e.viewModelInstanceFireTrigger,
		ViewModelInstanceGetViewModel:         e.viewModelInstanceGetViewModel,
		ViewModelInstanceReplaceViewModel:     e.viewModelInstanceReplaceViewModel,
		ViewModelInstancePropertyHasChanged:   e.viewModelInstancePropertyHasChanged,
		ViewModelInstanceClearPropertyChanges: e.viewModelInstanceClearPropertyChanges,
		ViewModelInstanceListSize:             e.viewModelInstanceListSize,
		ViewModelInstanceListInstanceAt:       e.viewModelInstanceListInstanceAt,
		ViewModelInstanceListAddInstance:      e.viewModelInstanceListAddInstance,
		ViewModelInstanceListAddInstanceAt:    e.viewModelInstanceListAddInstanceAt,
		ViewModelInstanceListRemoveInstance:   e.viewModelInstanceListRemoveInstance,
		ViewModelInstanceListRemoveInstanceAt: e.viewModelInstanceListRemoveInstanceAt,
		ViewModelInstanceListSwap:             e.viewModelInstanceListSwap,
		ViewModelInstanceSetArtboard:          e.viewModelInstanceSetArtboard,
		ViewModelInstanceSetArtboardViewModel: e.viewModelInstanceSetArtboardViewModel,
		ViewModelInstanceSetImage:             e.viewModelInstanceSetImage,
		ViewModelInstanceGetImage:             e.viewModelInstanceGetImage,

		ComputeAlignment: e.computeAlignment,
		MapXY:            e.mapXY,

		DecodeAudio:       e.decodeAudio,
		DecodeFont:        e.decodeFont,
		DecodeWebGL2Image: e.decodeWebGL2Image,
		AudioSourceUnref:  e.audioSourceUnref,
		FontUnref:         e.fontUnref,
		RenderImageRef:    e.renderImageRef,
		RenderImageUnref:  e.renderImageUnref,

		PtrToFileAsset:  e.ptrToFileAsset,
		PtrToAudioAsset: e.ptrToAudioAsset,
		PtrToImageAsset: e.ptrToImageAsset,
		PtrToFontAsset:  e.ptrToFontAsset,

		FileAssetName:            e.fileAssetName,
		FileAssetCDNBaseURL:      e.fileAssetCDNBaseURL,
		FileAssetFileExtension:   e.fileAssetFileExtension,
		FileAssetUniqueFilename:  e.fileAssetUniqueFilename,
		FileAssetIsAudio:         e.fileAssetIsAudio,
		FileAssetIsImage:         e.fileAssetIsImage,
		FileAssetIsFont:          e.fileAssetIsFont,
		FileAssetCDNUUID:         e.fileAssetCDNUUID,
		FileAssetDecode:          e.fileAssetDecode,
		AudioAssetSetAudioSource: e.audioAssetSetAudioSource,
		FontAssetSetFont:         e.fontAssetSetFont,
		ImageAssetSetRenderImage: e.imageAssetSetRenderImage,
	}
}
